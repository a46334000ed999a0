package paging_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/datahub/internal/app/system/paging"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"defaults", "/datasets", paging.DefaultLimit, 0, false},
		{"explicit", "/datasets?limit=25&offset=5", 25, 5, false},
		{"zero limit", "/datasets?limit=0", 0, 0, false},
		{"max limit", "/datasets?limit=100", 100, 0, false},
		{"limit over cap", "/datasets?limit=101", 0, 0, true},
		{"negative limit", "/datasets?limit=-1", 0, 0, true},
		{"negative offset", "/datasets?offset=-10", 0, 0, true},
		{"non-numeric limit", "/datasets?limit=abc", 0, 0, true},
		{"non-numeric offset", "/datasets?offset=1.5", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p, err := paging.Parse(r)

			if tt.wantErr {
				if !errors.Is(err, paging.ErrInvalidPagination) {
					t.Errorf("got %v, want ErrInvalidPagination", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want limit=%d offset=%d",
					p.Limit, p.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if _, err := paging.Validate(10, 0); err != nil {
		t.Errorf("Validate(10, 0): unexpected error %v", err)
	}
	if _, err := paging.Validate(-1, 0); !errors.Is(err, paging.ErrInvalidPagination) {
		t.Errorf("Validate(-1, 0): got %v, want ErrInvalidPagination", err)
	}
	if _, err := paging.Validate(10, -1); !errors.Is(err, paging.ErrInvalidPagination) {
		t.Errorf("Validate(10, -1): got %v, want ErrInvalidPagination", err)
	}
}
