package service

import (
	"context"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/analyzer"
	"sales-crm-be/pkg/nlquery/builder"
	"sales-crm-be/pkg/nlquery/classifier"
)

// IInsightService runs the advisory question-to-SQL pipeline. It never
// executes the generated SQL; both operations are read-only explanations.
type IInsightService interface {
	QueryExplain(ctx context.Context, userCtx *nlquery.UserContext, question string) (*dto.QueryExplainResponse, error)
	IntentPreview(ctx context.Context, userCtx *nlquery.UserContext, question string) (*dto.IntentPreviewResponse, error)
}

type insightService struct {
	classifier *classifier.Classifier
	builder    *builder.Builder
	analyzer   *analyzer.Analyzer
	sysLogger  logger.ILogger
}

func NewInsightService(
	c *classifier.Classifier,
	b *builder.Builder,
	a *analyzer.Analyzer,
	sysLogger logger.ILogger,
) IInsightService {
	return &insightService{
		classifier: c,
		builder:    b,
		analyzer:   a,
		sysLogger:  sysLogger,
	}
}

func (s *insightService) QueryExplain(ctx context.Context, userCtx *nlquery.UserContext, question string) (*dto.QueryExplainResponse, error) {
	result, err := s.classifier.Classify(ctx, question, userCtx)
	if err != nil {
		return nil, err
	}

	plan, err := s.builder.Build(&result.Intent, userCtx)
	if err != nil {
		return nil, err
	}

	report := s.analyzer.Analyze(plan, &result.Intent)

	s.sysLogger.Info("insight", "query explained", map[string]interface{}{
		"category":       string(result.Intent.Category),
		"tables":         plan.AffectedTables,
		"estimated_rows": report.EstimatedRows,
		"warning_count":  len(report.Warnings),
	})

	return &dto.QueryExplainResponse{
		SQL:            plan.SQL,
		Explanation:    plan.Explanation,
		AffectedTables: plan.AffectedTables,
		EstimatedRows:  report.EstimatedRows,
		Warnings:       report.Warnings,
	}, nil
}

func (s *insightService) IntentPreview(ctx context.Context, userCtx *nlquery.UserContext, question string) (*dto.IntentPreviewResponse, error) {
	result, err := s.classifier.Classify(ctx, question, userCtx)
	if err != nil {
		return nil, err
	}

	complexity := analyzer.EstimateComplexity(&result.Intent)

	var aggregation *string
	if result.Intent.Aggregation != nil {
		v := string(result.Intent.Aggregation.Type)
		aggregation = &v
	}

	return &dto.IntentPreviewResponse{
		Intent: dto.IntentPreviewIntent{
			Category:     string(result.Intent.Category),
			Tables:       result.Intent.Tables,
			FilterCount:  len(result.Intent.Filters),
			Aggregation:  aggregation,
			HasTimeRange: result.Intent.TimeRange != nil,
		},
		Confidence:          result.Confidence,
		Explanation:         result.Explanation,
		EstimatedComplexity: string(complexity),
	}, nil
}
