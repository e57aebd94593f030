package eatfood

import "strings"

const CategoryOther = "其他"

type Category struct {
	Label   string   `yaml:"label"`
	Markers []string `yaml:"markers"`
}

func DefaultCategories() []Category {
	return []Category{
		{Label: "蔬菜类", Markers: []string{"番茄", "黄瓜", "白菜", "土豆", "胡萝卜", "青菜", "菠菜"}},
		{Label: "肉蛋类", Markers: []string{"鸡蛋", "鸡肉", "猪肉", "牛肉", "鱼", "虾"}},
		{Label: "主食类", Markers: []string{"大米", "面条", "面粉", "面包"}},
		{Label: "调料类", Markers: []string{"油", "盐", "糖", "酱油", "醋"}},
	}
}

// CategoryGroup holds the names assigned to one category, in list order.
type CategoryGroup struct {
	Label string
	Names []string
}

type Categorizer struct {
	categories []Category
	other      string
}

func NewCategorizer(categories []Category) *Categorizer {
	return &Categorizer{
		categories: categories,
		other:      CategoryOther,
	}
}

// Of returns the label of the first category with a marker contained in
// name, or the catch-all label.
func (c *Categorizer) Of(name string) string {
	for _, cat := range c.categories {
		for _, marker := range cat.Markers {
			if strings.Contains(name, marker) {
				return cat.Label
			}
		}
	}
	return c.other
}

// Categorize partitions the list. Groups follow category declaration order
// with the catch-all last; empty groups are left out.
func (c *Categorizer) Categorize(list *ShoppingList) []CategoryGroup {
	byLabel := make(map[string][]string)
	for _, name := range list.Names() {
		label := c.Of(name)
		byLabel[label] = append(byLabel[label], name)
	}

	groups := make([]CategoryGroup, 0, len(byLabel))
	for _, label := range c.labels() {
		if names, ok := byLabel[label]; ok {
			groups = append(groups, CategoryGroup{Label: label, Names: names})
			delete(byLabel, label)
		}
	}
	return groups
}

func (c *Categorizer) labels() []string {
	labels := make([]string, 0, len(c.categories)+1)
	for _, cat := range c.categories {
		labels = append(labels, cat.Label)
	}
	return append(labels, c.other)
}
