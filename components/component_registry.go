package components

import (
	"fmt"
	"strings"

	"invaders/ecs"
)

// tagNames lists tag bits in bit order
var tagNames = []struct {
	tag  ecs.TagSet
	name string
}{
	{Player, "Player"},
	{Enemy, "Enemy"},
	{Laser, "Laser"},
	{FromPlayer, "FromPlayer"},
	{FromEnemy, "FromEnemy"},
	{Explosion, "Explosion"},
}

// TagNames returns the names of every tag set in tags, in bit order
func TagNames(tags ecs.TagSet) []string {
	names := make([]string, 0, len(tagNames))
	for _, t := range tagNames {
		if tags.Has(t.tag) {
			names = append(names, t.name)
		}
	}
	return names
}

// ParseTags converts tag names into a TagSet. Names are case-insensitive.
func ParseTags(names []string) (ecs.TagSet, error) {
	var tags ecs.TagSet
	for _, name := range names {
		found := false
		for _, t := range tagNames {
			if strings.EqualFold(t.name, name) {
				tags |= t.tag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown tag: %s", name)
		}
	}
	return tags, nil
}
