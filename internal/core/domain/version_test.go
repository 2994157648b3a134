package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.limmat.ch/packrat/internal/core/domain"
)

func TestCandidateVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		want      []string
	}{
		{
			name:      "Upstream Suffix",
			candidate: "5.2.3+deb11u1",
			want:      []string{"5.2.3+deb11u1", "5.2.3"},
		},
		{
			name:      "No Suffix",
			candidate: "5.2.3",
			want:      []string{"5.2.3"},
		},
		{
			name:      "Epoch Stripped",
			candidate: "2:1.4-3",
			want:      []string{"1.4-3"},
		},
		{
			name:      "Epoch And Suffix",
			candidate: "1:4.3.1+ds1-8+deb12u1",
			want:      []string{"4.3.1+ds1-8+deb12u1", "4.3.1"},
		},
		{
			name:      "Split At First Plus",
			candidate: "3.46.4-2+deb12u1+b1",
			want:      []string{"3.46.4-2+deb12u1+b1", "3.46.4-2"},
		},
		{
			name:      "Leading Plus Keeps Full Only",
			candidate: "+weird",
			want:      []string{"+weird"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, domain.CandidateVersions(tt.candidate))
		})
	}
}
