package router

import "strings"

// ChatTopicPolicy forces open_chat for topics answered from the static hotel
// facts rather than the document index. It is a secondary policy applied only
// after a successful classification and never yields any other intent.
type ChatTopicPolicy struct {
	rules []topicRule
}

type topicRule struct {
	topic    string
	keywords []string
}

// NewChatTopicPolicy returns the policy with the default rule table, checked in order.
func NewChatTopicPolicy() *ChatTopicPolicy {
	return &ChatTopicPolicy{rules: []topicRule{
		{topic: "smoking", keywords: []string{"smoke", "smoking"}},
		{topic: "website", keywords: []string{"website", "link", "url"}},
		{topic: "quiet hours", keywords: []string{"quiet hours", "noise after", "sleep time"}},
		{topic: "events", keywords: []string{"parties", "party", "events", "gatherings"}},
		{topic: "languages", keywords: []string{"languages", "language", "speak", "parler", "spreken"}},
	}}
}

// Match returns the first topic whose keywords occur in the utterance.
func (p *ChatTopicPolicy) Match(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	for _, rule := range p.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.topic, true
			}
		}
	}
	return "", false
}
