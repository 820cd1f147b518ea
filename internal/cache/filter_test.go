package cache

import "testing"

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		file   string
		want   bool
	}{
		{name: "empty filter keeps everything", filter: Filter{}, file: "colors.h", want: true},
		{name: "include match", filter: Filter{Include: []string{"*.h"}}, file: "colors.h", want: true},
		{name: "include miss", filter: Filter{Include: []string{"*.h"}}, file: "kitty.conf", want: false},
		{name: "exclude wins", filter: Filter{Include: []string{"*"}, Exclude: []string{"*.bak"}}, file: "a.bak", want: false},
		{name: "brace pattern", filter: Filter{Include: []string{"*.{conf,ini}"}}, file: "dunst.ini", want: true},
		{name: "empty pattern ignored", filter: Filter{Exclude: []string{""}}, file: "a", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.file); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	if err := (Filter{Include: []string{"*.h", "**/*.conf"}}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (Filter{Exclude: []string{"[bad"}}).Validate(); err == nil {
		t.Error("Validate() should reject unclosed class")
	}
}
