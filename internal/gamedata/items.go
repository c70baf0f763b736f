package gamedata

import "fmt"

// ItemDef defines a shop item loaded from YAML.
type ItemDef struct {
	Name        string `yaml:"name"`        // Display name and inventory key
	Price       int    `yaml:"price"`       // Cost in gold
	Description string `yaml:"description"` // Flavor text shown in the shop
}

// Validate checks that the definition satisfies basic invariants.
func (i *ItemDef) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item: name must not be empty")
	}
	if i.Price < 0 {
		return fmt.Errorf("item %q: price must not be negative, got %d", i.Name, i.Price)
	}
	return nil
}

// ItemsFile represents the structure of items.yaml.
type ItemsFile struct {
	Items []ItemDef `yaml:"items"`
}

// LoadItems loads shop item definitions from the embedded items.yaml file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.yaml")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
