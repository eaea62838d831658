package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Use selects the locales used for translation, overriding the
// locales of the host environment.
func Use(locales ...string) {
	printerOnce.Do(func() {})
	setPrinter(locales)
}

func setPrinter(locales []string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

func getPrinter() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("mipsemu: locale: %v", err)
		}

		setPrinter(locales)
	})

	return printer
}

// Error is an en-US error message, translated each time it is formatted.
// Being a comparable value, it is suitable for sentinel errors.
type Error string

func (e Error) Error() string {
	return From(string(e))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return getPrinter().Sprintf(key, args...)
}
