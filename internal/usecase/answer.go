package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"natalia/config"
	"natalia/internal/port"
)

// Composer produces the reply for one user message. Resolution order is
// cache, then canned intent answers, then document retrieval, then a
// generic fallback. Every computed answer is written back to the cache;
// cache hits are returned as stored.
type Composer struct {
	intents   *IntentResolver
	retriever port.Retriever
	cache     port.ResponseCache
	contact   config.ContactConfig

	topK            int
	minContextChars int
	ttlIntent       time.Duration
	ttlRetrieval    time.Duration
	ttlGeneric      time.Duration
}

func NewComposer(cfg *config.Config, intents *IntentResolver, retriever port.Retriever, cache port.ResponseCache) *Composer {
	return &Composer{
		intents:         intents,
		retriever:       retriever,
		cache:           cache,
		contact:         cfg.Contact,
		topK:            cfg.Retrieval.TopK,
		minContextChars: cfg.Retrieval.MinContextChars,
		ttlIntent:       time.Duration(cfg.Cache.TTLIntent) * time.Second,
		ttlRetrieval:    time.Duration(cfg.Cache.TTLRetrieval) * time.Second,
		ttlGeneric:      time.Duration(cfg.Cache.TTLGeneric) * time.Second,
	}
}

// Answer never fails: retrieval errors degrade to the generic fallback.
func (c *Composer) Answer(ctx context.Context, query string) string {
	if cached, ok := c.cache.Get(ctx, query); ok {
		return cached
	}

	if resp, ok := c.intents.Resolve(query); ok {
		c.cache.Set(ctx, query, resp, c.ttlIntent)
		return resp
	}

	if docContext := c.searchDocuments(query); utf8.RuneCountInString(strings.TrimSpace(docContext)) > c.minContextChars {
		resp := documentAnswer(c.contact, docContext)
		c.cache.Set(ctx, query, resp, c.ttlRetrieval)
		return resp
	}

	resp := genericAnswer(c.contact)
	c.cache.Set(ctx, query, resp, c.ttlGeneric)
	return resp
}

// searchDocuments formats the top chunks as a tagged context block. An
// empty string means nothing useful was found.
func (c *Composer) searchDocuments(query string) string {
	if c.retriever == nil {
		return ""
	}

	chunks, err := c.retriever.Search(query, c.topK)
	if err != nil {
		log.Printf("warning: document search failed: %v", err)
		return ""
	}

	var b strings.Builder
	for _, sc := range chunks {
		docType := string(sc.DocType)
		if docType == "" {
			docType = "documento"
		}
		fmt.Fprintf(&b, "\n[%s]: %s\n", docType, sc.Text)
	}
	return b.String()
}
