package configs

// Locale selects the language and currency used in change descriptions
// and report exports.
type Locale struct {
	Tag      string `env:"TAG" envDefault:"pt-BR"`
	Currency string `env:"CURRENCY" envDefault:"BRL"`
}
