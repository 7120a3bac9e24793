package logger

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		format string
	}{
		{"human", false, "human"},
		{"human debug", true, "human"},
		{"json", false, "json"},
		{"unknown falls back to human", false, "banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.debug, tt.format); err != nil {
				t.Fatalf("Init(%v, %q) = %v", tt.debug, tt.format, err)
			}
			if L() == nil {
				t.Fatal("expected a logger after Init")
			}
		})
	}
}

func TestSync(t *testing.T) {
	// Sync runs at process exit, before and after Init alike.
	Sync()
	if err := Init(false, "human"); err != nil {
		t.Fatal(err)
	}
	Sync()
}

func TestL_BeforeInit(t *testing.T) {
	// The zero logger is a nop, never nil.
	if L() == nil {
		t.Fatal("expected nop logger before Init")
	}
	L().Debugw("must not panic")
}
