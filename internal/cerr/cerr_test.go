package cerr

import "testing"

func TestErrorWireFormat(t *testing.T) {
	err := New(7, "i undeclared")
	if got, want := err.Error(), "Near line 7: i undeclared"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatAddsSourceContextWhenAvailable(t *testing.T) {
	err := New(2, "syntax error")
	source := "int i;\ni = ;\n"
	got := err.Format(source, false)
	want := "Near line 2: syntax error\n   2 | i = ;\n       ^"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatWithoutSourceIsJustTheWireFormat(t *testing.T) {
	err := New(1, "boom")
	if got, want := err.Format("", false), err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
