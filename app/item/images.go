package item

import (
	"encoding/json"
	"math"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Images is the multi-image shape of a feed item. Keys keep the order in
// which they were decoded or set.
type Images struct {
	pairs *orderedmap.OrderedMap[string, Image]
}

// NewImages creates an empty image mapping.
func NewImages() *Images {
	return &Images{pairs: orderedmap.New[string, Image]()}
}

// Set stores image under key. An existing key keeps its position.
func (im *Images) Set(key string, image Image) {
	if im.pairs == nil {
		im.pairs = orderedmap.New[string, Image]()
	}
	im.pairs.Set(key, image)
}

// Get returns the image stored under key.
func (im *Images) Get(key string) (Image, bool) {
	if im == nil || im.pairs == nil {
		return Image{}, false
	}
	return im.pairs.Get(key)
}

// Len returns the number of stored images. A nil mapping is empty.
func (im *Images) Len() int {
	if im == nil || im.pairs == nil {
		return 0
	}
	return im.pairs.Len()
}

// Keys returns the keys in object enumeration order: canonical array-index
// keys ascending, then every other key in insertion order.
func (im *Images) Keys() []string {
	if im.Len() == 0 {
		return nil
	}

	var indexed []uint64
	var named []string
	for pair := im.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if idx, ok := arrayIndex(pair.Key); ok {
			indexed = insertSorted(indexed, idx)
			continue
		}
		named = append(named, pair.Key)
	}

	keys := make([]string, 0, len(indexed)+len(named))
	for _, idx := range indexed {
		keys = append(keys, strconv.FormatUint(idx, 10))
	}
	return append(keys, named...)
}

// First returns the image stored under the first enumerated key.
func (im *Images) First() (Image, bool) {
	keys := im.Keys()
	if len(keys) == 0 {
		return Image{}, false
	}
	return im.Get(keys[0])
}

func (im *Images) firstSource() string {
	image, _ := im.First()
	return image.Src
}

// UnmarshalJSON decodes an object keyed by image name in document order. An
// array is keyed by element index, the way its keys enumerate.
func (im *Images) UnmarshalJSON(data []byte) error {
	if isArray(data) {
		var elements []json.RawMessage
		if err := json.Unmarshal(data, &elements); err != nil {
			return err
		}

		im.pairs = orderedmap.New[string, Image](len(elements))
		for i, element := range elements {
			im.pairs.Set(strconv.Itoa(i), decodeImage(element))
		}
		return nil
	}

	raw := orderedmap.New[string, json.RawMessage]()
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}

	im.pairs = orderedmap.New[string, Image](raw.Len())
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		im.pairs.Set(pair.Key, decodeImage(pair.Value))
	}
	return nil
}

// MarshalJSON encodes the images as an object in insertion order.
func (im *Images) MarshalJSON() ([]byte, error) {
	if im == nil || im.pairs == nil {
		return []byte("null"), nil
	}

	out := orderedmap.New[string, map[string]string](im.pairs.Len())
	for pair := im.pairs.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, map[string]string{"src": pair.Value.Src})
	}
	return out.MarshalJSON()
}

// arrayIndex reports whether key is a canonical array index ("0", "7", "42"
// but not "07" or "4294967295").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	idx, err := strconv.ParseUint(key, 10, 64)
	if err != nil || idx >= math.MaxUint32 {
		return 0, false
	}
	return idx, true
}

func insertSorted(values []uint64, v uint64) []uint64 {
	i := len(values)
	for i > 0 && values[i-1] > v {
		i--
	}
	values = append(values, 0)
	copy(values[i+1:], values[i:])
	values[i] = v
	return values
}
