package config

// Logging
const (
	LogDir         = "./logs"
	LogFilePattern = "xmrvault-%s.log" // %s = YYYY-MM-DD
	LogMaxAgeDays  = 30
)

// Wallet creation defaults
const (
	DefaultWalletName = "primary"
	DefaultLanguage   = "english"
	DefaultWordsCount = 25
)
