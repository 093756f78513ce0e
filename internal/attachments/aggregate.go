package attachments

import (
	"sort"
	"strconv"
	"strings"

	"github.com/studyhall-dev/studyhall-web/internal/logger"
)

// Aggregate merges the four collections into one render-ready gallery
// sequence, newest first. The sort is stable, so items with equal recency
// keys keep bundle order: images, videos, documents, polls.
func Aggregate(b Bundle) []Attachment {
	items := make([]Attachment, 0, b.Len())
	for _, a := range b.Images {
		items = append(items, a)
	}
	for _, a := range b.Videos {
		items = append(items, a)
	}
	for _, a := range b.Documents {
		items = append(items, a)
	}
	for _, a := range b.Polls {
		items = append(items, a)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return recencyKey(items[i].Ref().Id) > recencyKey(items[j].Ref().Id)
	})
	return items
}

// recencyKey extracts the epoch-millis segment of ids shaped like
// "<prefix>-<millis>". Attachments carry no explicit creation timestamp, so
// ordering leans on this id shape; anything that doesn't match degrades to
// key 0 instead of failing the render.
func recencyKey(id string) int64 {
	_, rest, found := strings.Cut(id, "-")
	if !found {
		return 0
	}
	segment := rest
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		segment = rest[:i]
	}
	key, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		logger.Log.Debug("unparsable attachment id, sorting with zero key", "id", id)
		return 0
	}
	return key
}

// Columns returns the gallery grid column count for n items, capped at 3.
// A single item is rendered in the large single layout instead of the grid.
func Columns(n int) int {
	if n < 3 {
		return n
	}
	return 3
}
