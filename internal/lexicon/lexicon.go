// Package lexicon provides the static keyword-pattern table used for
// regex-based skill spotting, independent of any learned model.
//
// The lexicon is data, not code: adding a skill means adding a pattern to a
// category, never changing matcher logic. A custom table can be loaded from a
// JSON file (see Load and LoadFile).
package lexicon

import (
	"fmt"
	"regexp"
)

// Category is a named group of skill regex alternatives.
type Category struct {
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
}

// Lexicon is a compiled set of categories ready for case-insensitive scanning.
type Lexicon struct {
	categories []Category
	compiled   []*regexp.Regexp
}

// Default returns the built-in lexicon covering programming languages, web
// frameworks, AI/ML toolkits, cloud/DevOps tools, databases, and
// process/architecture terms.
func Default() *Lexicon {
	lex, err := New(defaultCategories())
	if err != nil {
		// The built-in table is covered by tests; a compile failure here is
		// a programming error.
		panic(fmt.Sprintf("lexicon: built-in table failed to compile: %v", err))
	}
	return lex
}

// New compiles a lexicon from the given categories. Every pattern is wrapped
// with (?i) so scanning is case-insensitive regardless of how the pattern was
// written.
func New(categories []Category) (*Lexicon, error) {
	lex := &Lexicon{
		categories: categories,
		compiled:   make([]*regexp.Regexp, 0, len(categories)),
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("lexicon category with empty name")
		}
		if len(cat.Patterns) == 0 {
			return nil, fmt.Errorf("lexicon category %q has no patterns", cat.Name)
		}
		for _, pattern := range cat.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("lexicon category %q: invalid pattern %q: %w", cat.Name, pattern, err)
			}
			lex.compiled = append(lex.compiled, re)
		}
	}
	return lex, nil
}

// Categories returns the category table backing this lexicon.
func (l *Lexicon) Categories() []Category {
	return l.categories
}

// FindAll scans text with every pattern and returns all matches, in pattern
// order, without deduplication. Callers normalize and deduplicate. A pattern
// may use a capture group to delimit the token; when the first group matches,
// it is returned instead of the whole match.
func (l *Lexicon) FindAll(text string) []string {
	var matches []string
	for _, re := range l.compiled {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 && m[1] != "" {
				matches = append(matches, m[1])
			} else {
				matches = append(matches, m[0])
			}
		}
	}
	return matches
}

// defaultCategories is the fixed built-in table. Patterns use word boundaries
// so "Go" does not match inside "Google". Names that start or end on a
// non-word character (C++, C#, .NET) cannot use \b on that side, so they get
// a separate pattern with explicit delimiter classes and a capture group.
func defaultCategories() []Category {
	return []Category{
		{
			Name: "programming_languages",
			Patterns: []string{
				`\b(?:Python|Java|JavaScript|TypeScript|Go|Ruby|PHP|Swift|Kotlin|Rust|Scala|Perl)\b`,
				`(?:^|[\s,;(])(C\+\+|C#|\.NET)(?:[\s,;.)]|$)`,
			},
		},
		{
			Name: "web_technologies",
			Patterns: []string{
				`\b(?:HTML\d?|CSS\d?|React|Angular|Vue|Node\.js|Next\.js|Express|Django|Flask|Spring|ASP\.NET|Blazor)\b`,
			},
		},
		{
			Name: "ai_ml_data",
			Patterns: []string{
				`\b(?:Machine Learning|Deep Learning|NLP|Computer Vision|AI|TensorFlow|PyTorch|Scikit-learn|Pandas|NumPy|Keras|OpenCV|Spacy|NLTK)\b`,
			},
		},
		{
			Name: "cloud_devops",
			Patterns: []string{
				`\b(?:AWS|Azure|GCP|Docker|Kubernetes|Jenkins|Terraform|Ansible|CircleCI|Git|GitHub|GitLab|CI/CD)\b`,
			},
		},
		{
			Name: "databases",
			Patterns: []string{
				`\b(?:SQL|MySQL|PostgreSQL|MongoDB|Redis|Oracle|Cassandra|DynamoDB|Elasticsearch)\b`,
			},
		},
		{
			Name: "tools_concepts",
			Patterns: []string{
				`\b(?:Agile|Scrum|JIRA|Rest API|GraphQL|Microservices|System Design|Unit Testing)\b`,
			},
		},
	}
}
