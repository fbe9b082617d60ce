package color_cache

import (
	"testing"

	"github.com/RBazelais/BoltBucket/models"
)

func TestListCache(t *testing.T) {
	Invalidate()

	if _, ok := GetList(); ok {
		t.Fatal("empty cache should miss")
	}

	colors := []models.Color{
		{ID: 1, Name: "Arctic White", HexCode: "#FFFFFF"},
		{ID: 2, Name: "Midnight Black", HexCode: "#000000"},
	}
	SetList(colors)

	got, ok := GetList()
	if !ok {
		t.Fatal("expected a cache hit after SetList")
	}
	if len(got) != 2 || got[0].Name != "Arctic White" {
		t.Errorf("cached colors = %+v", got)
	}

	Invalidate()
	if _, ok := GetList(); ok {
		t.Error("cache should miss after Invalidate")
	}
}
