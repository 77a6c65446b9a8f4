package domain

import (
	"fmt"
	"strings"
)

// Network is a deployment target understood by clarinet deployments generate
type Network struct {
	Label string
	Value string
}

// Networks lists the selectable deployment networks
var Networks = []Network{
	{Label: "Mainnet", Value: "mainnet"},
	{Label: "Testnet", Value: "testnet"},
	{Label: "Devnet", Value: "devnet"},
	{Label: "Local", Value: "local"},
}

// ParseNetwork looks up a network by value or label, case-insensitively
func ParseNetwork(name string) (Network, error) {
	for _, n := range Networks {
		if strings.EqualFold(n.Value, name) || strings.EqualFold(n.Label, name) {
			return n, nil
		}
	}
	return Network{}, fmt.Errorf("unknown network %q (expected mainnet, testnet, devnet or local)", name)
}
