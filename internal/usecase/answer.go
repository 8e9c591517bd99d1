package usecase

import (
	"unicode/utf8"

	"healthrag/internal/adapter/analyzer"
	"healthrag/internal/adapter/index"
	"healthrag/internal/domain"
	"healthrag/internal/port"
)

// Fixed answer framing. The corpus is a Thai health forum; answers cite
// forum threads and always point the reader to a doctor.
const (
	answerPrefix     = "จากข้อมูลในฟอรัมสุขภาพ:\n\n"
	answerDisclaimer = "\n\nนี่เป็นข้อมูลจากกระทู้ในฟอรัม กรุณาปรึกษาแพทย์สำหรับการวินิจฉัยและการรักษาที่ถูกต้อง"
	noInfoAnswer     = "ขออภัย ไม่พบข้อมูลที่เกี่ยวข้องในฟอรัมสุขภาพ\n\nกรุณาลองใช้คำถามอื่นหรือถามคำถามให้ละเอียดมากขึ้น"
	ellipsis         = "..."
)

// AnswerUseCase composes a structured answer from ranked results: the
// most similar thread's text as the primary answer, its score as the
// confidence, and every result as a cited source.
type AnswerUseCase struct {
	index        *index.Index
	retriever    port.Retriever
	defaultTopK  int
	maxAnswer    int
	snippetRunes int
}

func NewAnswerUseCase(ix *index.Index, retriever port.Retriever, defaultTopK, maxAnswerChars, snippetChars int) *AnswerUseCase {
	if defaultTopK <= 0 {
		defaultTopK = 3
	}
	if maxAnswerChars <= 0 {
		maxAnswerChars = 800
	}
	if snippetChars <= 0 {
		snippetChars = 300
	}
	return &AnswerUseCase{
		index:        ix,
		retriever:    retriever,
		defaultTopK:  defaultTopK,
		maxAnswer:    maxAnswerChars,
		snippetRunes: snippetChars,
	}
}

// Answer retrieves the k most similar threads and composes the reply.
// No relevant thread is not an error: the caller gets the fixed
// "no information found" text with zero confidence and no sources.
func (u *AnswerUseCase) Answer(question string, k int) (domain.Answer, error) {
	if k <= 0 {
		k = u.defaultTopK
	}

	results, err := u.retriever.Search(question, k)
	if err != nil {
		return domain.Answer{}, err
	}
	if len(results) == 0 {
		return domain.Answer{Text: noInfoAnswer, Confidence: 0, Sources: []domain.Source{}}, nil
	}

	top := results[0]
	content := u.index.Text(top.DocIndex)
	if utf8.RuneCountInString(content) > u.maxAnswer {
		content = analyzer.TruncateRunes(content, u.maxAnswer) + ellipsis
	}

	sources := make([]domain.Source, 0, len(results))
	for _, r := range results {
		meta := u.index.Meta(r.DocIndex)
		sources = append(sources, domain.Source{
			Title:   meta.Title,
			URL:     meta.URL,
			Score:   r.Score,
			Snippet: analyzer.TruncateRunes(meta.Snippet, u.snippetRunes) + ellipsis,
		})
	}

	return domain.Answer{
		Text:       answerPrefix + content + answerDisclaimer,
		Confidence: top.Score,
		Sources:    sources,
	}, nil
}
