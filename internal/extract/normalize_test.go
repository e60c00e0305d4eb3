// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "sentence break and ellipsis",
			in:   "Hello world. This is   a test...",
			want: "Hello world.\nThis is a test...",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \n\t \n",
			want: "",
		},
		{
			name: "newlines become spaces",
			in:   "Rovî\nû\nşêr\n",
			want: "Rovî û şêr",
		},
		{
			name: "noise characters removed",
			in:   "«Çîrok» — (yek) \"du\"; sê! çar?",
			want: "Çîrok yek du sê çar",
		},
		{
			name: "apostrophe and comma kept",
			in:   "Min got, ez'ê werim",
			want: "Min got, ez'ê werim",
		},
		{
			name: "double period is not split",
			in:   "Wait.. then go. Done",
			want: "Wait.. then go.\nDone",
		},
		{
			name: "period after noise removal",
			in:   "Yek. «Du». Sê.",
			want: "Yek.\nDu.\nSê.",
		},
		{
			name: "period without following space stays inline",
			in:   "v1.2 is out.Next",
			want: "v1.2 is out.Next",
		},
		{
			name: "underscore and digits are word characters",
			in:   "snake_case 42 ٣",
			want: "snake_case 42 ٣",
		},
		{
			name: "non-breaking and unicode spaces collapse",
			in:   "a\u00a0 \u00a0b\u2003c\u0085d",
			want: "a b c d",
		},
		{
			name: "decomposed letters keep diacritics",
			in:   "s\u0327e\u0302r",
			want: "\u015f\u00ear",
		},
		{
			name: "trailing period has no newline",
			in:   "Dawî.  ",
			want: "Dawî.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := []string{
		"Hello world. This is   a test...",
		"  Gelek   caran\n\n\tdibe.   Paşê... tiştek  . din.\n",
		"Ez (tu) [ew] {em}. Hûn: ew; ne! Erê? Belê.",
		"a . b .. c ... d . ",
		"Rêz 1.\n\nRêz 2.\r\nRêz 3.",
		"$%^&*()@#~`|\\/<>+=",
	}

	for _, in := range inputs {
		out := Normalize(in)

		for _, r := range out {
			ok := unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' ||
				r == ' ' || r == '\n' || r == '.' || r == ',' || r == '\''
			assert.Truef(t, ok, "unexpected rune %q in %q", r, out)
		}

		for i := 1; i < len(out); i++ {
			prevSpace := out[i-1] == ' ' || out[i-1] == '\n'
			curSpace := out[i] == ' ' || out[i] == '\n'
			assert.Falsef(t, prevSpace && curSpace, "consecutive whitespace at %d in %q", i, out)
		}

		for i := 0; i+1 < len(out); i++ {
			if out[i] != '.' {
				continue
			}
			if out[i+1] == ' ' {
				assert.Truef(t, i > 0 && out[i-1] == '.', "lone period followed by space at %d in %q", i, out)
			}
			if out[i+1] == '\n' {
				assert.Falsef(t, i > 0 && out[i-1] == '.', "ellipsis split at %d in %q", i, out)
			}
		}

		assert.Equal(t, strings.TrimSpace(out), out)
	}
}
