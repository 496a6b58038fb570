package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ExamPaperKey returns the cache key for an exam's assembled question paper.
func (r *CacheKeyStruct) ExamPaperKey(examID int) string {
	return fmt.Sprintf("exam:%d:paper", examID)
}

var CacheKey = NewCacheKeyStruct()
