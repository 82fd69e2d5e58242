package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetaDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		html      string
		directive string
		want      bool
	}{
		{
			name:      "noindex present",
			html:      `<html><head><meta name="robots" content="noindex, nofollow"></head></html>`,
			directive: DirectiveNoindex,
			want:      true,
		},
		{
			name:      "nofollow present",
			html:      `<html><head><meta name="robots" content="noindex, nofollow"></head></html>`,
			directive: DirectiveNofollow,
			want:      true,
		},
		{
			name:      "content matching is case insensitive",
			html:      `<html><head><meta name="robots" content="NOINDEX"></head></html>`,
			directive: DirectiveNoindex,
			want:      true,
		},
		{
			name:      "no robots meta tag",
			html:      `<html><head><meta name="description" content="noindex"></head></html>`,
			directive: DirectiveNoindex,
			want:      false,
		},
		{
			name:      "empty content attribute",
			html:      `<html><head><meta name="robots" content=""></head></html>`,
			directive: DirectiveNoindex,
			want:      false,
		},
		{
			name:      "missing content attribute",
			html:      `<html><head><meta name="robots"></head></html>`,
			directive: DirectiveNoindex,
			want:      false,
		},
		{
			name: "only the first robots meta is consulted",
			html: `<html><head>` +
				`<meta name="robots" content="index, follow">` +
				`<meta name="robots" content="noindex">` +
				`</head></html>`,
			directive: DirectiveNoindex,
			want:      false,
		},
		{
			name:      "name attribute value match is case sensitive",
			html:      `<html><head><meta name="ROBOTS" content="noindex"></head></html>`,
			directive: DirectiveNoindex,
			want:      false,
		},
		{
			name:      "empty body",
			html:      "",
			directive: DirectiveNoindex,
			want:      false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, metaDirective([]byte(tt.html), tt.directive))
		})
	}
}
