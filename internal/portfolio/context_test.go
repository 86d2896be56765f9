package portfolio

import (
	"strings"
	"testing"

	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
)

func TestContextSummarySeed(t *testing.T) {
	got := ContextSummary(store.Seed())

	for _, line := range []string{
		"[기본 정보]",
		"현재 관리 건물 수: 1개",
		"현재 관리 호실 수: 4개",
		"현재 입주 임차인 수: 3명",
		"현재 미납 건수: 1건",
		"[건물 목록]",
		"- 강남 선샤인 빌라 (Villa, 서울특별시 강남구 테헤란로 123 (역삼동))",
		"[임차인 목록 예시]",
		"- 강남 선샤인 빌라 101호: 김철수",
		"- 강남 선샤인 빌라 202호: 이영희",
		"- 강남 선샤인 빌라 305호: 박민수",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("summary missing %q\n%s", line, got)
		}
	}
}

func TestContextSummaryDanglingUnitRendersBlank(t *testing.T) {
	snap := store.Snapshot{
		Tenants: []models.Tenant{{ID: "t1", UnitID: "ghost", Name: "김철수"}},
	}

	got := ContextSummary(snap)
	if !strings.Contains(got, "-  : 김철수") {
		t.Errorf("dangling unit should render blank names:\n%s", got)
	}
}

func TestContextSummaryEmpty(t *testing.T) {
	got := ContextSummary(store.Snapshot{})
	if !strings.Contains(got, "현재 관리 건물 수: 0개") {
		t.Errorf("empty summary:\n%s", got)
	}
	if !strings.Contains(got, "현재 미납 건수: 0건") {
		t.Errorf("empty summary:\n%s", got)
	}
}
