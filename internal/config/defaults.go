package config

// DefaultWeights is the built-in weight preset, used when no weight
// document is found and merged under any partial document. Structural
// declarations weigh more than statements, statements more than leaves,
// and comments weigh 0 so they never count toward the metric. Any node
// kind not listed resolves to weight 1.0 at lookup time.
var DefaultWeights = map[string]map[string]float64{
	"python": {
		"class_definition":     8,
		"function_definition":  5,
		"decorated_definition": 2,
		"if_statement":         2,
		"elif_clause":          1.5,
		"for_statement":        2,
		"while_statement":      2,
		"try_statement":        2,
		"except_clause":        1.5,
		"with_statement":       2,
		"lambda":               2,
		"list_comprehension":   2,
		"return_statement":     1.5,
		"raise_statement":      1.5,
		"comment":              0,
	},
	"javascript": {
		"class_declaration":    8,
		"function_declaration": 5,
		"method_definition":    5,
		"arrow_function":       3,
		"function_expression":  3,
		"if_statement":         2,
		"for_statement":        2,
		"for_in_statement":     2,
		"while_statement":      2,
		"switch_statement":     2,
		"try_statement":        2,
		"catch_clause":         1.5,
		"ternary_expression":   1.5,
		"return_statement":     1.5,
		"comment":              0,
	},
	"java": {
		"class_declaration":       8,
		"interface_declaration":   8,
		"enum_declaration":        6,
		"method_declaration":      5,
		"constructor_declaration": 4,
		"lambda_expression":       3,
		"if_statement":            2,
		"for_statement":           2,
		"enhanced_for_statement":  2,
		"while_statement":         2,
		"switch_expression":       2,
		"try_statement":           2,
		"catch_clause":            1.5,
		"return_statement":        1.5,
		"line_comment":            0,
		"block_comment":           0,
	},
	"cpp": {
		"class_specifier":      8,
		"struct_specifier":     6,
		"function_definition":  5,
		"lambda_expression":    3,
		"template_declaration": 4,
		"if_statement":         2,
		"for_statement":        2,
		"for_range_loop":       2,
		"while_statement":      2,
		"switch_statement":     2,
		"try_statement":        2,
		"catch_clause":         1.5,
		"return_statement":     1.5,
		"comment":              0,
	},
}

// Default returns a Config populated with the built-in presets. The maps
// are copied so callers may adjust the result freely.
func Default() *Config {
	cfg := &Config{Languages: make(map[string]LanguageConfig, len(DefaultWeights))}
	for lang, weights := range DefaultWeights {
		nw := make(map[string]float64, len(weights))
		for kind, w := range weights {
			nw[kind] = w
		}
		cfg.Languages[lang] = LanguageConfig{NodeWeights: nw}
	}
	return cfg
}
