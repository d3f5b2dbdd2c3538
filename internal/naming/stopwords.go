package naming

// fallbackStopwords is the built-in stopword set for the rule-based ranker.
// The statistical ranker carries its own (larger) English list; this one only
// needs to catch the function words that show up in field descriptions.
var fallbackStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "being", "by",
	"can", "could", "did", "do", "does", "for", "from", "had", "has",
	"have", "he", "how", "if", "in", "is", "it", "its", "may", "might",
	"must", "of", "on", "once", "or", "shall", "should", "that", "the",
	"this", "to", "used", "was", "were", "when", "where", "which", "who",
	"why", "will", "with", "would",
}
