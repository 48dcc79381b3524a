package element

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/sonnes/texgen/core"
)

// listingsLanguages maps chroma lexer names to the names the listings package
// knows. Lexers missing here are emitted without a language option.
var listingsLanguages = map[string]string{
	"bash":     "bash",
	"c":        "C",
	"c++":      "C++",
	"haskell":  "Haskell",
	"html":     "HTML",
	"java":     "Java",
	"lua":      "Lua",
	"makefile": "make",
	"perl":     "Perl",
	"php":      "PHP",
	"python":   "Python",
	"python 2": "Python",
	"r":        "R",
	"ruby":     "Ruby",
	"sql":      "SQL",
	"tex":      "TeX",
	"xml":      "XML",
}

var alltt = strings.NewReplacer(`\`, `\textbackslash{}`, `{`, `\{`, `}`, `\}`)

// Listing is a block of source code.
//
// By default it renders an lstlisting environment (listings package). With
// Highlight set the code is tokenised with chroma and rendered in an alltt
// environment with keywords in bold, comments in italics and strings
// coloured (alltt and xcolor packages).
type Listing struct {
	core.Base
	Code      string
	Language  string // language name or alias; guessed from Filename or Code when empty
	Filename  string
	Highlight bool
}

// NewListing returns a listing of code in lang.
func NewListing(code, lang string) *Listing {
	return &Listing{Code: code, Language: lang}
}

// Lexer returns the chroma lexer for the listing, or nil when the language
// cannot be determined.
func (l *Listing) Lexer() chroma.Lexer {
	if l.Language != "" {
		if lx := lexers.Get(l.Language); lx != nil {
			return lx
		}
	}
	if l.Filename != "" {
		if lx := lexers.Match(l.Filename); lx != nil {
			return lx
		}
	}
	if l.Language == "" && l.Filename == "" {
		return lexers.Analyse(l.Code)
	}
	return nil
}

// Packages returns the listing's own packages plus the ones its rendering
// mode needs.
func (l *Listing) Packages() *core.Packages {
	p := l.Base.Packages().Clone()
	if l.Highlight {
		p.Add(core.NewPackage("alltt"))
		p.Add(core.NewPackage("xcolor"))
	} else {
		p.Add(core.NewPackage("listings"))
	}
	return p
}

// Dumps renders an lstlisting environment, or a highlighted alltt block when
// Highlight is set.
func (l *Listing) Dumps() (string, error) {
	code := strings.TrimSuffix(l.Code, "\n")
	if l.Highlight {
		return l.dumpsHighlighted(code)
	}

	var opts []string
	if lx := l.Lexer(); lx != nil {
		if name, ok := listingsLanguages[strings.ToLower(lx.Config().Name)]; ok {
			opts = append(opts, "language="+name)
		}
	}
	return `\begin{lstlisting}` + dumpsOptions(opts) + "\n" + code + "\n" + `\end{lstlisting}`, nil
}

func (l *Listing) dumpsHighlighted(code string) (string, error) {
	lx := l.Lexer()
	if lx == nil {
		lx = lexers.Fallback
	}
	it, err := chroma.Coalesce(lx).Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`\begin{alltt}` + "\n")
	for _, tok := range it.Tokens() {
		wrap := tokenMacro(tok.Type)
		// Macros must not span lines inside alltt.
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			if part == "" {
				continue
			}
			if wrap == "" {
				b.WriteString(alltt.Replace(part))
				continue
			}
			b.WriteString(wrap + "{" + alltt.Replace(part) + "}")
		}
	}
	code = strings.TrimSuffix(b.String(), "\n")
	return code + "\n" + `\end{alltt}`, nil
}

func tokenMacro(t chroma.TokenType) string {
	switch {
	case t.InCategory(chroma.Keyword):
		return `\textbf`
	case t.InCategory(chroma.Comment):
		return `\textit`
	case t.InSubCategory(chroma.LiteralString):
		return `\textcolor{teal}`
	default:
		return ""
	}
}
