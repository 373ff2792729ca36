package content

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestAboutFor(t *testing.T) {
	cases := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"en-US,en;q=0.9", language.English},
		{"zh-CN,zh;q=0.9,en;q=0.8", language.Chinese},
		{"fr-FR", language.English},
		{"not a header ;;", language.English},
	}
	for _, tc := range cases {
		tag, paras := AboutFor(tc.header)
		if tag != tc.want {
			t.Fatalf("AboutFor(%q) tag = %v, want %v", tc.header, tag, tc.want)
		}
		if len(paras) == 0 {
			t.Fatalf("AboutFor(%q) returned no paragraphs", tc.header)
		}
	}

	_, zh := AboutFor("zh")
	if !strings.Contains(zh[0], "Arabella") {
		t.Fatalf("chinese about missing name: %q", zh[0])
	}
}

func TestSectionsHaveContent(t *testing.T) {
	if len(Jobs) == 0 || len(Skills) == 0 || len(Projects) == 0 || len(Songs) == 0 || len(Places) == 0 || len(Foods) == 0 {
		t.Fatal("portfolio content is incomplete")
	}
	for _, s := range Skills {
		if s.Percent < 0 || s.Percent > 100 {
			t.Fatalf("skill %q percent %d out of range", s.Name, s.Percent)
		}
	}
}

func TestFinanceAndGallery(t *testing.T) {
	if Finance.Title == "" || len(Finance.Areas) == 0 || len(Finance.Books) == 0 {
		t.Fatalf("finance interest is incomplete: %+v", Finance)
	}
	if len(Photos) != 6 {
		t.Fatalf("got %d photos, want 6", len(Photos))
	}
	for _, p := range Photos {
		if p.Caption == "" || !strings.HasPrefix(p.Thumbnail, "https://") || p.Thumbnail == p.Full {
			t.Errorf("bad photo %+v", p)
		}
	}
}
