package cmd

import "testing"

func TestParseLineSpec(t *testing.T) {
	testCases := []struct {
		in      string
		wantKey string
		wantQty string
		wantErr bool
	}{
		{in: "WIDGET:2", wantKey: "WIDGET", wantQty: "2"},
		{in: "5001:1.5", wantKey: "5001", wantQty: "1.5"},
		{in: "A:B:2", wantKey: "A:B", wantQty: "2"}, // quantity follows the last colon
		{in: "WIDGET", wantErr: true},
		{in: "WIDGET:", wantErr: true},
		{in: ":2", wantErr: true},
		{in: "WIDGET:abc", wantErr: true},
		{in: "WIDGET:0", wantErr: true},
		{in: "WIDGET:-1", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := parseLineSpec(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseLineSpec(%q) error = nil, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLineSpec(%q) error = %v", tc.in, err)
			continue
		}
		if got.Key != tc.wantKey {
			t.Errorf("parseLineSpec(%q).Key = %q, want %q", tc.in, got.Key, tc.wantKey)
		}
		if got.Quantity.String() != tc.wantQty {
			t.Errorf("parseLineSpec(%q).Quantity = %s, want %s", tc.in, got.Quantity, tc.wantQty)
		}
	}
}
