// Package advisor integrates the external text-generation collaborator used
// to draft lease advice and overdue-payment notices. The collaborator is a
// black box behind the Generator interface; every failure mode is converted
// to a fixed Korean fallback string, never an error.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/estateflow/estateflow/internal/models"
)

// Fallback responses. These exact strings are part of the product surface;
// the UI renders them verbatim.
const (
	FallbackMissingKey  = "API 키 설정을 확인해주세요."
	FallbackAdviceError = "AI 서비스 연결 중 오류가 발생했습니다."
	FallbackAdviceEmpty = "응답을 생성할 수 없습니다."
	FallbackNoticeError = "AI 서비스 오류 발생."
	FallbackNoticeEmpty = "메시지를 생성할 수 없습니다."
)

// Greeting is the assistant's opening message in a fresh conversation.
const Greeting = "안녕하세요! 임대 관리 AI 비서입니다. 무엇을 도와드릴까요? 미납 문자 작성이나 계약 관련 질문을 해주세요."

// Generator is the one-shot text-generation collaborator. Implementations
// must not be called when Configured reports false.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service composes prompts and maps generator failures to fallback strings.
type Service struct {
	gen Generator
}

// NewService wraps a generator. A nil generator behaves like an unconfigured
// one.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Configured reports whether the underlying generator can be called.
func (s *Service) Configured() bool {
	return s.gen != nil && s.gen.Configured()
}

// GenerateAdvice answers a free-text request in the persona of a Korean
// rental-management assistant, grounded on the given portfolio context
// summary. Missing credentials, transport errors, and empty generations each
// yield their fixed fallback string.
func (s *Service) GenerateAdvice(ctx context.Context, prompt, contextSummary string) string {
	if !s.Configured() {
		return FallbackMissingKey
	}
	out, err := s.gen.Generate(ctx, advicePrompt(prompt, contextSummary))
	if err != nil {
		slog.Error("advice generation failed", slog.String("error", err.Error()))
		return FallbackAdviceError
	}
	if strings.TrimSpace(out) == "" {
		return FallbackAdviceEmpty
	}
	return out
}

// DraftNotice asks for an overdue-payment notice addressed to the tenant,
// requesting three tonal variants (soft, standard, firm).
func (s *Service) DraftNotice(ctx context.Context, tenantName string, amount int64, paymentType models.PaymentType, daysOverdue int) string {
	if !s.Configured() {
		return FallbackMissingKey
	}
	out, err := s.gen.Generate(ctx, noticePrompt(tenantName, amount, paymentType, daysOverdue))
	if err != nil {
		slog.Error("notice drafting failed",
			slog.String("tenant", tenantName),
			slog.String("error", err.Error()))
		return FallbackNoticeError
	}
	if strings.TrimSpace(out) == "" {
		return FallbackNoticeEmpty
	}
	return out
}

func advicePrompt(prompt, contextSummary string) string {
	var b strings.Builder
	b.WriteString("당신은 한국의 전문적인 부동산 임대 관리 비서입니다.\n")
	b.WriteString("사용자의 요청에 따라 정중하고 전문적인 톤으로 답변하세요.\n\n")
	b.WriteString("[현재 상황 데이터]\n")
	b.WriteString(contextSummary)
	b.WriteString("\n\n[사용자 요청]\n")
	b.WriteString(prompt)
	return b.String()
}

func noticePrompt(tenantName string, amount int64, paymentType models.PaymentType, daysOverdue int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "임차인 %s님에게 보낼 %s 미납 안내 문자를 작성해주세요.\n", tenantName, paymentType.Label())
	fmt.Fprintf(&b, "미납 금액은 %s원 이며, 납부 예정일로부터 %d일 지났습니다.\n", FormatWon(amount), daysOverdue)
	b.WriteString("정중하지만 단호하게 납부를 요청하는 톤으로 작성해주세요. 3가지 다른 버전(부드러움, 표준, 단호함)을 제안해주세요.")
	return b.String()
}

// FormatWon renders an amount with thousands separators, e.g. 450000 as
// "450,000".
func FormatWon(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
