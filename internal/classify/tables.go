package classify

// categoryTable maps a portfolio category to the keywords that signal it.
// Matching is substring-based against the lower-cased message. Categories
// are scanned in this order so ties resolve to the earlier entry.
var categoryTable = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "work", "job", "role", "position", "worked", "working", "company", "expertzlab"}},
	{"projects", []string{"project", "portfolio", "built", "developed", "created", "eduvocate", "ecommerce", "chatbot", "research"}},
	{"skills", []string{"skill", "expertise", "technology", "language", "framework", "database", "tool", "stack", "mern", "react", "node", "mongodb", "javascript"}},
	{"education", []string{"education", "college", "university", "study", "degree", "course", "training", "rajagiri", "mcom"}},
	{"contact", []string{"contact", "email", "phone", "linkedin", "connect", "reach", "address", "location", "phone number"}},
	{"research", []string{"research", "paper", "publication", "journal", "iot", "microservices", "architecture"}},
}

// phraseTable holds semantic-intent phrases and the confidence boost each
// matching phrase contributes. Every match counts; there is no
// first-match-only rule.
var phraseTable = []struct {
	intent  string
	boost   float64
	phrases []string
}{
	{"about_aravind", 15, []string{"tell me about", "who is", "about aravind", "profile", "background"}},
	{"help_general", 3, []string{"help", "assist", "explain", "define", "what is", "how to", "how does"}},
	{"hiring", 20, []string{"hire", "recruiter", "recruitment", "opportunity", "vacancy", "position"}},
}

// interrogatives are the question-word prefixes checked when no category
// matched.
var interrogatives = []string{"what", "how", "why", "when", "where", "which", "who"}
