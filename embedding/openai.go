package embedding

import "github.com/philippgille/chromem-go"

// OpenAIFuncs OpenAI 임베딩 API 를 쓰는 chromem 임베딩 함수 (문서, 질문 공용)
func OpenAIFuncs(apiKey string) (document, query chromem.EmbeddingFunc) {
	f := chromem.NewEmbeddingFuncOpenAI(apiKey, chromem.EmbeddingModelOpenAI3Small)
	return f, f
}
