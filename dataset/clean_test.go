package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Brazil", "Brazil"},
		{"whitespace", "  Brazil ", "Brazil"},
		{"scrape artifact", `rn">Germany`, "Germany"},
		{"umlaut u", "Thomas MÃ¼ller", "Thomas Mueller"},
		{"umlaut o", "Mario GÃ¶tze", "Mario Goetze"},
		{"acute e", "AndrÃ©", "Andre"},
		{"full cell correction", "Stade V�lodrome", "Stade Vélodrome"},
		{"malmo normalization", "Malmo", "Malmö"},
		{"unknown garbling kept", "Estadio X�Y", "Estadio X�Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanCell(tt.in))
		})
	}
}
