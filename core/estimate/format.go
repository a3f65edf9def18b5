package estimate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouped renders numbers with thousands separators ("1,250,000")
var grouped = message.NewPrinter(language.English)
