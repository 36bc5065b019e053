package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/natefinch/atomic"
	"github.com/shopspring/decimal"
)

// Result describes a produced report artifact.
type Result struct {
	Task       domain.ReportTask
	OutputPath string
	Lines      int
	Duration   time.Duration
}

// Processor turns the ledger into one report artifact.
type Processor interface {
	Task() domain.ReportTask
	Process(ctx context.Context) (Result, error)
}

// renderFunc produces the artifact lines from the ledger.
type renderFunc func(ctx context.Context, reader *LedgerReader) ([]string, error)

// fileProcessor is the shared scan-render-write cycle of every report.
type fileProcessor struct {
	task    domain.ReportTask
	reader  *LedgerReader
	output  string
	render  renderFunc
	nowFunc func() time.Time
}

func (p *fileProcessor) Task() domain.ReportTask {
	return p.task
}

func (p *fileProcessor) Process(ctx context.Context) (Result, error) {
	start := p.nowFunc()

	lines, err := p.render(ctx, p.reader)
	if err != nil {
		return Result{}, err
	}
	if err := writeArtifact(p.output, lines); err != nil {
		return Result{}, err
	}

	return Result{
		Task:       p.task,
		OutputPath: p.output,
		Lines:      len(lines),
		Duration:   p.nowFunc().Sub(start),
	}, nil
}

// NewProcessors builds the three report processors writing into outputDir.
func NewProcessors(reader *LedgerReader, outputDir string) map[domain.ReportTask]Processor {
	newProcessor := func(task domain.ReportTask, file string, render renderFunc) Processor {
		return &fileProcessor{
			task:    task,
			reader:  reader,
			output:  filepath.Join(outputDir, file),
			render:  render,
			nowFunc: time.Now,
		}
	}
	return map[domain.ReportTask]Processor{
		domain.ReportTaskAccounts: newProcessor(domain.ReportTaskAccounts, AccountsFile, RenderAccounts),
		domain.ReportTaskYearly:   newProcessor(domain.ReportTaskYearly, YearlyFile, RenderYearly),
		domain.ReportTaskFS:       newProcessor(domain.ReportTaskFS, FinancialStatementFile, RenderFinancialStatement),
	}
}

// EnsureOutputDir creates the artifact directory if it does not exist.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report output directory %s: %w", dir, err)
	}
	return nil
}

// writeArtifact replaces path atomically so pollers never see a half written report.
func writeArtifact(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write report %s: %w", filepath.Base(path), err)
	}
	return nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
