package vis

import "testing"

func TestParseFont(t *testing.T) {
	tests := []struct {
		raw     string
		want    Font
		wantErr bool
	}{
		{raw: "Arial-16", want: Font{Family: "Arial", Size: 16}},
		{raw: " DejaVu-Sans-12 ", want: Font{Family: "DejaVu-Sans", Size: 12}},
		{raw: "Arial", wantErr: true},
		{raw: "-16", wantErr: true},
		{raw: "Arial-", wantErr: true},
		{raw: "Arial-big", wantErr: true},
		{raw: "Arial-0", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFont(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFont(%q) = %v, want error", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFont(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFont(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestFontStringRoundTrip(t *testing.T) {
	f := Font{Family: "Arial", Size: 16}
	if got := f.String(); got != DefaultHeaderFont {
		t.Fatalf("String() = %q, want %q", got, DefaultHeaderFont)
	}
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvHeight, "")
	t.Setenv(EnvHeaderFont, "")
	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}

	t.Setenv(EnvWidth, "1024")
	t.Setenv(EnvHeight, "600")
	t.Setenv(EnvHeaderFont, "Courier-20")
	cfg, err = DefaultConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Width: 1024, Height: 600, HeaderFont: Font{Family: "Courier", Size: 20}}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestDefaultConfigFromEnvErrors(t *testing.T) {
	for _, tc := range []struct{ key, val string }{
		{EnvWidth, "wide"},
		{EnvHeight, "-3"},
		{EnvHeaderFont, "Arial"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(EnvWidth, "")
			t.Setenv(EnvHeight, "")
			t.Setenv(EnvHeaderFont, "")
			t.Setenv(tc.key, tc.val)
			if _, err := DefaultConfigFromEnv(); err == nil {
				t.Fatalf("%s=%q: expected error", tc.key, tc.val)
			}
		})
	}
}
