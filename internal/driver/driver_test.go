package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestCompileScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "EmptyBlock",
			source: "{}",
			want:   "L1:L2:",
		},
		{
			name:   "UnusedDeclaration",
			source: "{int i;}",
			want:   "L1:L2:",
		},
		{
			name:   "SingleAssignment",
			source: "{int i; i = 10;}",
			want:   "L1:\ti = 10\nL2:",
		},
		{
			name:   "ArrayStore",
			source: "{int i;int[20] arr; i = 10; arr[i] = 10;}",
			want:   "L1:\ti = 10\nL3:\tt1 = i * 4\n\tarr[ t1 ] = 10\nL2:",
		},
		{
			name:   "BreakTargetsAfterLabel",
			source: "{ while (true) { break; } }",
			want:   "L1:L3:\tgoto L2\n\tgoto L1\nL2:",
		},
		{
			name:   "BreakInsideNestedBlock",
			source: "{int i; int j; i = 10; j = 1; while (j < i) { i = i + 1; break;} }",
			want: "L1:\ti = 10\n" +
				"L3:\tj = 1\n" +
				"L4:\tiffalse j < i goto L2\n" +
				"L5:\ti = i + 1\n" +
				"L6:\tgoto L2\n" +
				"\tgoto L4\n" +
				"L2:",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CompileString(tc.source)
			if err != nil {
				t.Fatalf("CompileString(%q) returned error: %v", tc.source, err)
			}
			if got != tc.want {
				t.Errorf("CompileString(%q):\ngot:  %q\nwant: %q", tc.source, got, tc.want)
			}
		})
	}
}

// TestCompileQuicksortInnerLoop reproduces the classic partition-loop
// fixture, including its exact temporary and label numbering. It is
// pinned with a snapshot rather than an inline literal because the
// expected listing is long enough that an inline string invites silent
// transcription drift.
func TestCompileQuicksortInnerLoop(t *testing.T) {
	source := `{
		int i; int j; float v; float x; float[100] a;
		while (true) {
			do i = i + 1; while (a[i] < v);
			do j = j - 1; while (a[j] > v);
			if (i >= j) break;
			x = a[i];
			a[i] = a[j];
			a[j] = x;
		}
	}`

	got, err := CompileString(source)
	if err != nil {
		t.Fatalf("CompileString returned error: %v", err)
	}
	snaps.MatchSnapshot(t, got)
}

func TestCompileReportsSyntaxError(t *testing.T) {
	_, err := CompileString("{int i i = 10;}")
	if err == nil {
		t.Fatalf("expected a syntax error, got nil")
	}
}

func TestCompileReportsUndeclaredIdentifier(t *testing.T) {
	_, err := CompileString("{i = 10;}")
	if err == nil {
		t.Fatalf("expected an undeclared-identifier error, got nil")
	}
}

func TestCompileReportsBreakOutsideLoop(t *testing.T) {
	_, err := CompileString("{break;}")
	if err == nil {
		t.Fatalf("expected a break-outside-loop error, got nil")
	}
}

func TestCompileTracedWritesCounterSummary(t *testing.T) {
	var trace bytes.Buffer
	listing, err := CompileTraced(strings.NewReader("{int i;int[20] arr; i = 10; arr[i] = 10;}"), &trace)
	if err != nil {
		t.Fatalf("CompileTraced returned error: %v", err)
	}
	if listing != "L1:\ti = 10\nL3:\tt1 = i * 4\n\tarr[ t1 ] = 10\nL2:" {
		t.Fatalf("unexpected listing: %q", listing)
	}
	if got := trace.String(); got != "labels allocated: 3, temporaries allocated: 1\n" {
		t.Fatalf("unexpected trace: %q", got)
	}
}

func TestCompileTracedNilWriterBehavesLikeCompile(t *testing.T) {
	got, err := CompileTraced(strings.NewReader("{}"), nil)
	if err != nil {
		t.Fatalf("CompileTraced returned error: %v", err)
	}
	if got != "L1:L2:" {
		t.Fatalf("unexpected listing: %q", got)
	}
}
