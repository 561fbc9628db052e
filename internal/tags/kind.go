package tags

import (
	"fmt"
	"unicode/utf8"
)

// KindName is the canonical name of a tag kind.
type KindName string

const (
	// KindUndefined marks an entry written without any kind field.
	KindUndefined KindName = ""
	// KindUnknown marks a kind letter the table does not recognise for the
	// entry's language. The letter itself is kept in TokenKind.Code.
	KindUnknown KindName = "unknown"

	KindAccessor        KindName = "accessor"
	KindAlias           KindName = "alias"
	KindAnnotation      KindName = "annotation"
	KindAnonMember      KindName = "anonMember"
	KindCallback        KindName = "callback"
	KindClass           KindName = "class"
	KindConstant        KindName = "constant"
	KindDelegate        KindName = "delegate"
	KindEnum            KindName = "enum"
	KindEnumConstant    KindName = "enumConstant"
	KindEnumerator      KindName = "enumerator"
	KindException       KindName = "exception"
	KindExternVar       KindName = "externvar"
	KindField           KindName = "field"
	KindFunction        KindName = "function"
	KindGenerator       KindName = "generator"
	KindGetter          KindName = "getter"
	KindGuard           KindName = "guard"
	KindHeader          KindName = "header"
	KindImplementation  KindName = "implementation"
	KindInterface       KindName = "interface"
	KindLibrary         KindName = "library"
	KindLocal           KindName = "local"
	KindMacro           KindName = "macro"
	KindMember          KindName = "member"
	KindMethod          KindName = "method"
	KindMethodSpec      KindName = "methodSpec"
	KindModule          KindName = "module"
	KindImportedName    KindName = "name"
	KindNamespace       KindName = "namespace"
	KindOperator        KindName = "operator"
	KindPackage         KindName = "package"
	KindPackageName     KindName = "packageName"
	KindParameter       KindName = "parameter"
	KindProperty        KindName = "property"
	KindPrototype       KindName = "prototype"
	KindProtocol        KindName = "protocol"
	KindReceiver        KindName = "receiver"
	KindRecord          KindName = "record"
	KindSetter          KindName = "setter"
	KindSingletonMethod KindName = "singletonMethod"
	KindStruct          KindName = "struct"
	KindTest            KindName = "test"
	KindType            KindName = "type"
	KindTypeAlias       KindName = "typeAlias"
	KindTypedef         KindName = "typedef"
	KindUnion           KindName = "union"
	KindUsing           KindName = "using"
	KindVariable        KindName = "variable"
)

// TokenKind is the resolved kind of a tag entry. The zero value is
// Undefined. Unknown kinds carry the letter they were parsed from so they
// encode back to the same text.
type TokenKind struct {
	Name KindName
	Code rune
}

// Undefined is the kind of an entry that has no kind field.
var Undefined = TokenKind{}

// Named returns the kind with the given canonical name.
func Named(name KindName) TokenKind {
	return TokenKind{Name: name}
}

// Unknown returns a kind that remembers an unrecognised letter.
func Unknown(c rune) TokenKind {
	return TokenKind{Name: KindUnknown, Code: c}
}

// IsUndefined reports whether no kind field was present.
func (k TokenKind) IsUndefined() bool {
	return k.Name == KindUndefined
}

// IsUnknown reports whether the kind letter was not recognised.
func (k TokenKind) IsUnknown() bool {
	return k.Name == KindUnknown
}

func (k TokenKind) String() string {
	switch k.Name {
	case KindUndefined:
		return "undefined"
	case KindUnknown:
		return fmt.Sprintf("unknown(%q)", k.Code)
	default:
		return string(k.Name)
	}
}

// Char returns the single-character code that encodes k for lang. It is the
// inverse of KindFromChar. Undefined has no code and returns 0.
func (k TokenKind) Char(lang Language) rune {
	switch k.Name {
	case KindUndefined:
		return 0
	case KindUnknown:
		return k.Code
	}
	if table, ok := kindTables[lang]; ok {
		if c, ok := table.byName[k.Name]; ok {
			return c
		}
	}
	// Only reachable for hand-built entries whose kind does not belong to
	// the path's language.
	c, _ := utf8.DecodeRuneInString(string(k.Name))
	return c
}

// KindFromChar resolves a kind letter within the scope of lang. Letters that
// the language does not define, and every letter when lang is LanguageNone,
// resolve to Unknown(c).
func KindFromChar(c rune, lang Language) TokenKind {
	if table, ok := kindTables[lang]; ok {
		if name, ok := table.byChar[c]; ok {
			return Named(name)
		}
	}
	return Unknown(c)
}

// KindsFor lists the kinds a language defines, keyed by letter.
func KindsFor(lang Language) map[rune]KindName {
	table, ok := kindTables[lang]
	if !ok {
		return nil
	}
	out := make(map[rune]KindName, len(table.byChar))
	for c, name := range table.byChar {
		out[c] = name
	}
	return out
}

type kindLetter struct {
	char rune
	name KindName
}

type kindTable struct {
	byChar map[rune]KindName
	byName map[KindName]rune
}

// Letters follow `ctags --list-kinds-full` for Universal Ctags.
var kindLetters = map[Language][]kindLetter{
	LanguageRuby: {
		{'c', KindClass}, {'f', KindMethod}, {'m', KindModule}, {'S', KindSingletonMethod},
		{'C', KindConstant}, {'A', KindAccessor}, {'a', KindAlias}, {'L', KindLibrary},
	},
	LanguageElixir: {
		{'p', KindProtocol}, {'m', KindModule}, {'f', KindFunction}, {'c', KindCallback},
		{'d', KindDelegate}, {'e', KindException}, {'g', KindGuard}, {'i', KindImplementation},
		{'a', KindMacro}, {'o', KindOperator}, {'r', KindRecord}, {'t', KindTest}, {'y', KindType},
	},
	LanguageGo: {
		{'p', KindPackage}, {'f', KindFunction}, {'c', KindConstant}, {'t', KindType},
		{'v', KindVariable}, {'s', KindStruct}, {'i', KindInterface}, {'m', KindMember},
		{'M', KindAnonMember}, {'n', KindMethodSpec}, {'P', KindPackageName},
		{'a', KindTypeAlias}, {'R', KindReceiver},
	},
	LanguagePython: {
		{'c', KindClass}, {'f', KindFunction}, {'m', KindMember}, {'v', KindVariable},
		{'I', KindNamespace}, {'i', KindModule}, {'z', KindParameter}, {'l', KindLocal},
	},
	LanguageJavaScript: {
		{'f', KindFunction}, {'c', KindClass}, {'m', KindMethod}, {'p', KindProperty},
		{'C', KindConstant}, {'v', KindVariable}, {'g', KindGenerator}, {'G', KindGetter},
		{'S', KindSetter}, {'M', KindField},
	},
	LanguageTypeScript: {
		{'f', KindFunction}, {'c', KindClass}, {'i', KindInterface}, {'g', KindEnum},
		{'e', KindEnumerator}, {'m', KindMethod}, {'n', KindNamespace}, {'z', KindParameter},
		{'p', KindProperty}, {'v', KindVariable}, {'l', KindLocal}, {'C', KindConstant},
		{'G', KindGenerator}, {'a', KindAlias},
	},
	LanguageRust: {
		{'n', KindModule}, {'s', KindStruct}, {'i', KindInterface}, {'c', KindImplementation},
		{'f', KindFunction}, {'g', KindEnum}, {'t', KindTypedef}, {'v', KindVariable},
		{'M', KindMacro}, {'m', KindField}, {'e', KindEnumerator}, {'P', KindMethod},
	},
	LanguageJava: {
		{'a', KindAnnotation}, {'c', KindClass}, {'e', KindEnumConstant}, {'f', KindField},
		{'g', KindEnum}, {'i', KindInterface}, {'l', KindLocal}, {'m', KindMethod},
		{'p', KindPackage},
	},
	LanguageC: {
		{'d', KindMacro}, {'e', KindEnumerator}, {'f', KindFunction}, {'g', KindEnum},
		{'h', KindHeader}, {'l', KindLocal}, {'m', KindMember}, {'p', KindPrototype},
		{'s', KindStruct}, {'t', KindTypedef}, {'u', KindUnion}, {'v', KindVariable},
		{'x', KindExternVar},
	},
	LanguageCPP: {
		{'d', KindMacro}, {'e', KindEnumerator}, {'f', KindFunction}, {'g', KindEnum},
		{'h', KindHeader}, {'l', KindLocal}, {'m', KindMember}, {'p', KindPrototype},
		{'s', KindStruct}, {'t', KindTypedef}, {'u', KindUnion}, {'v', KindVariable},
		{'x', KindExternVar}, {'c', KindClass}, {'n', KindNamespace}, {'A', KindAlias},
		{'N', KindImportedName}, {'U', KindUsing},
	},
}

var kindTables = buildKindTables(kindLetters)

func buildKindTables(letters map[Language][]kindLetter) map[Language]kindTable {
	tables := make(map[Language]kindTable, len(letters))
	for lang, list := range letters {
		table := kindTable{
			byChar: make(map[rune]KindName, len(list)),
			byName: make(map[KindName]rune, len(list)),
		}
		for _, l := range list {
			table.byChar[l.char] = l.name
			table.byName[l.name] = l.char
		}
		tables[lang] = table
	}
	return tables
}
