package scenes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownScene is returned by [Lookup] if no built-in scene has the
// given name.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// All contains all built-in scenes, grouped by category.
// The full name of a scene is the category name, followed by an
// underscore and the scene name.
var All = map[string][]Scene{
	"original": originalScenes,
	"basic":    basicScenes,
	"holes":    holeScenes,
	"edge":     edgeScenes,
}

// Names returns the full names of all built-in scenes, in sorted order.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			names = append(names, category+"_"+s.Name)
		}
	}
	return names
}

// Lookup returns the built-in scene with the given full name, for example
// "original_shapes". The result is a copy with the Name field set to the
// full name. Its polygons are shared with the built-in table and must not
// be modified.
func Lookup(name string) (*Scene, error) {
	category, short, ok := strings.Cut(name, "_")
	if ok {
		for _, s := range All[category] {
			if s.Name == short {
				res := s
				res.Name = name
				return &res, nil
			}
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
}
