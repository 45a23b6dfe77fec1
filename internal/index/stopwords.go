package index

import "strings"

// english stop words dropped during tokenization, matching the usual
// vectorizer behavior for free-text job descriptions.
var stopWords = buildStopSet(`a about above after again against all am an and
any are as at be because been before being below between both but by could
did do does doing down during each few for from further had has have having
he her here hers herself him himself his how i if in into is it its itself
just me more most my myself no nor not now of off on once only or other our
ours ourselves out over own same she should so some such than that the their
theirs them themselves then there these they this those through to too under
until up very was we were what when where which while who whom why will with
you your yours yourself yourselves`)

func buildStopSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
