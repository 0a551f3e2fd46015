package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skein.dev/skein/internal/core/domain"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "/src/app.ts", want: "/src/app.ts"},
		{name: "backslashes", in: `C:\src\app.ts`, want: "C:/src/app.ts"},
		{name: "redundant elements", in: "/src/./lib/../app.ts", want: "/src/app.ts"},
		{name: "trailing slash", in: "/src/", want: "/src"},
		{name: "empty stays empty", in: "", want: ""},
		{name: "relative", in: "src\\util.ts", want: "src/util.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizePath(tt.in))
		})
	}
}
