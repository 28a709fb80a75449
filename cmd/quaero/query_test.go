package main

import (
	"testing"
)

func TestParseWhere(t *testing.T) {
	tests := []struct {
		clause string
		want   string
	}{
		{"Age ge 18", "Age ge 18"},
		{"Town eq London", "Town eq 'London'"},
		{"Town eq 'London'", "Town eq 'London'"},
		{"Active eq true", "Active eq true"},
		{"Rating gt 4.5", "Rating gt 4.5"},
		{"Name eq Ada Lovelace", "Name eq 'Ada Lovelace'"},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			f, err := parseWhere(tt.clause)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.Compile(); got != tt.want {
				t.Errorf("Compile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseWhere_Invalid(t *testing.T) {
	invalid := []string{"", "Age", "Age ge", "Age between 1"}
	for _, clause := range invalid {
		if _, err := parseWhere(clause); err == nil {
			t.Errorf("parseWhere(%q): expected error", clause)
		}
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		clause string
		want   string
	}{
		{"Age desc", "Age desc"},
		{"Name asc", "Name asc"},
		{"Name", "Name asc"},
	}
	for _, tt := range tests {
		key, err := parseOrderBy(tt.clause)
		if err != nil {
			t.Fatalf("parseOrderBy(%q): %v", tt.clause, err)
		}
		if got := key.Compile(); got != tt.want {
			t.Errorf("parseOrderBy(%q) = %q, want %q", tt.clause, got, tt.want)
		}
	}
}

func TestParseOrderBy_Invalid(t *testing.T) {
	invalid := []string{"", "Age sideways", "Age desc extra"}
	for _, clause := range invalid {
		if _, err := parseOrderBy(clause); err == nil {
			t.Errorf("parseOrderBy(%q): expected error", clause)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest(searchOptions{
		query:   "coffee",
		where:   []string{"Age ge 18", "Town eq London"},
		orderBy: []string{"Age desc"},
		skip:    10,
		top:     5,
		facets:  []string{"Town"},
		count:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text, _ := req.FullText(); text != "coffee" {
		t.Errorf("full text = %q", text)
	}
	filter, _ := req.Filter()
	want := "true and Age ge 18 and Town eq 'London'"
	if filter != want {
		t.Errorf("filter = %q, want %q", filter, want)
	}
	if order := req.OrderBy(); len(order) != 1 || order[0] != "Age desc" {
		t.Errorf("order = %v", order)
	}
	if !req.IncludeTotalCount() {
		t.Error("count flag not set")
	}
}

func TestBuildRequest_UnsetPagingOmitted(t *testing.T) {
	req, err := buildRequest(searchOptions{skip: -1, top: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := req.Skip(); found {
		t.Error("skip set without flag")
	}
	if _, found := req.Top(); found {
		t.Error("top set without flag")
	}
}
