package models

// WalletExport is the JSON shape the CLI prints for a constructed wallet.
// Secret fields are omitted when the wallet does not hold them.
type WalletExport struct {
	Name            string `json:"name"`
	WatchOnly       bool   `json:"watchOnly"`
	Mnemonic        string `json:"mnemonic,omitempty"`
	Seed            string `json:"seed,omitempty"`
	PrivateSpendKey string `json:"privateSpendKey,omitempty"`
	PrivateViewKey  string `json:"privateViewKey"`
	PublicSpendKey  string `json:"publicSpendKey"`
	PublicViewKey   string `json:"publicViewKey"`
	PrimaryAddress  string `json:"primaryAddress"`
}

// SeedReport is the JSON shape the CLI prints when inspecting a mnemonic
// without building a wallet.
type SeedReport struct {
	Words    int    `json:"words"`
	Language string `json:"language"`
	Seed     string `json:"seed"`
}
