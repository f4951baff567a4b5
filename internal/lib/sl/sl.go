package sl

import (
	"log/slog"
)

// Err xatolikni log atributiga aylantirish
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Module komponent nomi
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret maxfiy qiymatni yashirib loglash (faqat boshi va oxiri ko'rinadi)
func Secret(key, value string) slog.Attr {
	return slog.String(key, mask(value))
}

func mask(value string) string {
	switch {
	case value == "":
		return "<empty>"
	case len(value) <= 8:
		return "***"
	default:
		return value[:3] + "***" + value[len(value)-2:]
	}
}
