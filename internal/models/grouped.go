package models

import (
	"bytes"
	"encoding/json"
)

// Key and labels for items whose category reference is null or dangling.
const (
	UncategorizedKey  = "uncategorized"
	UncategorizedName = "Без категории"
)

// ItemGroup is one bucket of the grouped listing: the category's label
// and classification plus its items in listing order.
type ItemGroup struct {
	CategoryName string     `json:"category_name"`
	CategoryType string     `json:"category_type"`
	Items        []FoodItem `json:"items"`
}

// GroupedItems maps category keys to their groups while remembering the
// order keys were first added. It marshals to a plain JSON object (the
// shape the web client indexes by category name), but with keys emitted
// in insertion order so rendering is reproducible.
type GroupedItems struct {
	keys   []string
	groups map[string]*ItemGroup
}

func NewGroupedItems() *GroupedItems {
	return &GroupedItems{groups: make(map[string]*ItemGroup)}
}

// Add appends item to the group under key, creating the group with the
// given label and classification on first sight of the key.
func (g *GroupedItems) Add(key, categoryName, categoryType string, item FoodItem) {
	group, ok := g.groups[key]
	if !ok {
		group = &ItemGroup{
			CategoryName: categoryName,
			CategoryType: categoryType,
			Items:        []FoodItem{},
		}
		g.groups[key] = group
		g.keys = append(g.keys, key)
	}
	group.Items = append(group.Items, item)
}

// Keys returns the group keys in insertion order.
func (g *GroupedItems) Keys() []string {
	return g.keys
}

// Group returns the group stored under key, or nil.
func (g *GroupedItems) Group(key string) *ItemGroup {
	return g.groups[key]
}

// Len returns the number of groups.
func (g *GroupedItems) Len() int {
	return len(g.keys)
}

// TotalItems returns the number of items across all groups.
func (g *GroupedItems) TotalItems() int {
	total := 0
	for _, group := range g.groups {
		total += len(group.Items)
	}
	return total
}

func (g *GroupedItems) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		groupJSON, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(groupJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
