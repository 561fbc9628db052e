package tags

import "path"

// Language identifies the source language of a tagged file.
type Language string

const (
	LanguageNone       Language = ""
	LanguageRuby       Language = "ruby"
	LanguageElixir     Language = "elixir"
	LanguageGo         Language = "go"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageRust       Language = "rust"
	LanguageJava       Language = "java"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
)

// Languages returns every supported language in a stable order.
func Languages() []Language {
	return []Language{
		LanguageRuby, LanguageElixir, LanguageGo, LanguagePython, LanguageJavaScript,
		LanguageTypeScript, LanguageRust, LanguageJava, LanguageC, LanguageCPP,
	}
}

func (l Language) String() string {
	if l == LanguageNone {
		return "none"
	}
	return string(l)
}

// Exact file names, checked before extensions.
var languageByBasename = map[string]Language{
	"Rakefile":    LanguageRuby,
	"Gemfile":     LanguageRuby,
	"Guardfile":   LanguageRuby,
	"Capfile":     LanguageRuby,
	"Vagrantfile": LanguageRuby,
	"Podfile":     LanguageRuby,
	"Brewfile":    LanguageRuby,
	"SConstruct":  LanguagePython,
	"SConscript":  LanguagePython,
}

// Extension matching is case-sensitive: ".C" and ".H" are C++ while ".c" is C.
var languageByExtension = map[string]Language{
	".rb":      LanguageRuby,
	".rake":    LanguageRuby,
	".gemspec": LanguageRuby,
	".ru":      LanguageRuby,
	".ex":      LanguageElixir,
	".exs":     LanguageElixir,
	".go":      LanguageGo,
	".py":      LanguagePython,
	".pyw":     LanguagePython,
	".pyi":     LanguagePython,
	".js":      LanguageJavaScript,
	".jsx":     LanguageJavaScript,
	".mjs":     LanguageJavaScript,
	".cjs":     LanguageJavaScript,
	".ts":      LanguageTypeScript,
	".tsx":     LanguageTypeScript,
	".mts":     LanguageTypeScript,
	".cts":     LanguageTypeScript,
	".rs":      LanguageRust,
	".java":    LanguageJava,
	".c":       LanguageC,
	".h":       LanguageCPP,
	".C":       LanguageCPP,
	".H":       LanguageCPP,
	".cc":      LanguageCPP,
	".cpp":     LanguageCPP,
	".cxx":     LanguageCPP,
	".c++":     LanguageCPP,
	".hh":      LanguageCPP,
	".hpp":     LanguageCPP,
	".hxx":     LanguageCPP,
	".h++":     LanguageCPP,
	".inl":     LanguageCPP,
}

// ResolveLanguage maps a file path, as written in a tags file, to its
// language. Paths that match no rule resolve to LanguageNone. Matching uses
// forward slashes regardless of the host OS.
func ResolveLanguage(filePath string) Language {
	base := path.Base(filePath)
	if lang, ok := languageByBasename[base]; ok {
		return lang
	}
	if lang, ok := languageByExtension[path.Ext(base)]; ok {
		return lang
	}
	return LanguageNone
}
