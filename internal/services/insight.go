package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/pkg/helpers"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

const (
	insightStores = 3
	insightTags   = 5
)

type vertexISClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type datasetISSource interface {
	Snapshot(ctx context.Context) ([]models.Store, []models.Review, models.StoreIndex)
}

// insightService writes a short summary of the current dashboard. With no
// Vertex client, or when the model call fails, it falls back to a fixed
// template over the same numbers.
type insightService struct {
	vertex vertexISClient
	data   datasetISSource
}

func NewInsightService(vertex vertexISClient, data datasetISSource) *insightService {
	return &insightService{vertex: vertex, data: data}
}

type insightFacts struct {
	filters   dto.FilterState
	kpi       dto.KPIData
	blacklist []dto.BlacklistStore
	tags      []dto.WordCloudItem
}

func (s *insightService) Insight(ctx context.Context, filters dto.FilterState) dto.InsightResponse {
	log := logger.FromContext(ctx)

	_, reviews, index := s.data.Snapshot(ctx)
	facts := insightFacts{
		filters:   filters,
		kpi:       CalculateKPIData(reviews, index, filters),
		blacklist: CalculateBlacklistStores(reviews, index, filters),
		tags:      CalculateWordCloudData(reviews, index, filters),
	}
	if len(facts.blacklist) > insightStores {
		facts.blacklist = facts.blacklist[:insightStores]
	}
	if len(facts.tags) > insightTags {
		facts.tags = facts.tags[:insightTags]
	}

	if s.vertex == nil {
		return dto.InsightResponse{Summary: templateInsight(facts)}
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          insightSystemPrompt,
		UserMessage:     insightPrompt(facts),
		Temperature:     helpers.Ptr(float32(0.3)),
		MaxOutputTokens: helpers.Ptr(int32(256)),
	})
	if err != nil {
		log.Warn("insight generation failed, using template", "error", err)
		return dto.InsightResponse{Summary: templateInsight(facts)}
	}
	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		log.Warn("insight generation returned no text, using template")
		return dto.InsightResponse{Summary: templateInsight(facts)}
	}

	log.Info("insight generated", "chars", len(summary))
	return dto.InsightResponse{Summary: summary, Generated: true}
}

const insightSystemPrompt = `你是连锁餐饮品牌的评价分析助手。
根据给定的指标，用2到3句中文总结本期口碑表现，指出最需要关注的门店和问题，并给出一条改进建议。
只使用给定的数字，不要编造数据。`

func scopeLabel(f dto.FilterState) string {
	parts := []string{f.DateRange.Label}
	if !isOpen(f.Region) {
		parts = append(parts, f.Region+"大区")
	}
	if !isOpen(f.Channel) {
		parts = append(parts, f.Channel+"渠道")
	}
	return strings.Join(parts, "，")
}

func blacklistNames(list []dto.BlacklistStore) string {
	if len(list) == 0 {
		return "无"
	}
	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, fmt.Sprintf("%s（差评率%.1f%%）", b.StoreName, b.NegativeRate))
	}
	return strings.Join(names, "、")
}

func tagNames(items []dto.WordCloudItem) string {
	if len(items) == 0 {
		return "无"
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, fmt.Sprintf("%s(%d)", it.Name, it.Value))
	}
	return strings.Join(names, "、")
}

func insightPrompt(f insightFacts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "范围：%s\n", scopeLabel(f.filters))
	fmt.Fprintf(&b, "品牌评分：%.1f（环比%+.1f%%）\n", f.kpi.BrandScore, f.kpi.BrandScoreTrend)
	fmt.Fprintf(&b, "差评率：%.1f%%（环比%+.1f%%）\n", f.kpi.NegativeRate, f.kpi.NegativeRateTrend)
	fmt.Fprintf(&b, "回复率：%.1f%%（环比%+.1f%%）\n", f.kpi.AvgReplyRate, f.kpi.AvgReplyRateTrend)
	fmt.Fprintf(&b, "食安事件：%d起（环比%+.1f%%）\n", f.kpi.FoodSafetyIncidents, f.kpi.FoodSafetyIncidentsTrend)
	fmt.Fprintf(&b, "差评门店：%s\n", blacklistNames(f.blacklist))
	fmt.Fprintf(&b, "高频差评标签：%s\n", tagNames(f.tags))
	return b.String()
}

func templateInsight(f insightFacts) string {
	trend := "持平"
	switch {
	case f.kpi.NegativeRateTrend > 0:
		trend = fmt.Sprintf("上升%.1f%%", f.kpi.NegativeRateTrend)
	case f.kpi.NegativeRateTrend < 0:
		trend = fmt.Sprintf("下降%.1f%%", -f.kpi.NegativeRateTrend)
	}

	summary := fmt.Sprintf("%s品牌评分%.1f，差评率%.1f%%，环比%s；回复率%.1f%%，食安事件%d起。",
		scopeLabel(f.filters), f.kpi.BrandScore, f.kpi.NegativeRate, trend,
		f.kpi.AvgReplyRate, f.kpi.FoodSafetyIncidents)
	if len(f.blacklist) > 0 {
		summary += fmt.Sprintf("需重点关注%s。", blacklistNames(f.blacklist))
	}
	if len(f.tags) > 0 {
		summary += fmt.Sprintf("高频差评标签为%s。", tagNames(f.tags))
	}
	return summary
}
