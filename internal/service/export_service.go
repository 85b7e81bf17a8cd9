package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-portal/config"
	"campus-portal/internal/repository"
	"campus-portal/pkg/timeutil"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoCourses    = errors.New("课程表为空")
	ErrExportNoExams      = errors.New("暂无考试安排")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// 导出文件的 Content-Type
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportWeeklySchedule 导出 date 所在周的课程表为 Excel
	ExportWeeklySchedule(ctx context.Context, date string) (*bytes.Buffer, string, error)
	// ExportExamCalendar 导出全部考试为 iCalendar
	ExportExamCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	cfg    *config.AppConfig
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, cfg *config.AppConfig, now func() time.Time, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, cfg: cfg, loc: cfg.Location(), now: now, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportWeeklySchedule 导出周课程表
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：Ders Programı (周一 - 周日日期范围)
//   - 行头：去重后的上课时间段（按开始时间排序）
//   - 列头：Pazartesi ~ Pazar（附日期）
//   - 单元格：课程名 / 教室，同一格多门课换行分隔，冲突课程加 ⚠ 前缀

func (s *exportService) ExportWeeklySchedule(ctx context.Context, date string) (*bytes.Buffer, string, error) {
	selected := timeutil.StartOfDay(s.now().In(s.loc))
	if strings.TrimSpace(date) != "" {
		d, err := timeutil.ParseDate(date, s.loc)
		if err != nil {
			return nil, "", err
		}
		selected = d
	}
	weekStart := timeutil.StartOfWeek(selected)

	courses, err := s.repo.ScheduleCourse.List(ctx)
	if err != nil {
		s.logger.Error("查询课程表失败", zap.Error(err))
		return nil, "", err
	}
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}
	views := scheduleViews(courses)

	// 1. 构建索引 "start-end" → 星期 → 单元格文本
	type rangeKey struct{ start, end string }
	cells := make(map[rangeKey]map[int][]string)
	var ranges []rangeKey
	for _, v := range views {
		k := rangeKey{v.StartTime, v.EndTime}
		if _, ok := cells[k]; !ok {
			cells[k] = make(map[int][]string)
			ranges = append(ranges, k)
		}
		text := v.Name
		if v.Room != "" {
			text += " / " + v.Room
		}
		if v.HasConflict {
			text = "⚠ " + text
		}
		cells[k][v.DayOfWeek] = append(cells[k][v.DayOfWeek], text)
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].start != ranges[j].start {
			return ranges[i].start < ranges[j].start
		}
		return ranges[i].end < ranges[j].end
	})

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ders Programı"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, colName(1), colName(7), 26)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D3557"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	weekEnd := weekStart.AddDate(0, 0, 6)
	title := fmt.Sprintf("Ders Programı (%s - %s)", timeutil.FormatLongDate(weekStart), timeutil.FormatLongDate(weekEnd))
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", cell(colName(7), 1))
	f.SetCellStyle(sheetName, "A1", cell(colName(7), 1), headerStyle)

	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Saat")
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		f.SetCellValue(sheetName, cell(colName(1+i), row), fmt.Sprintf("%s\n%d %s", timeutil.DayNames[i], d.Day(), timeutil.MonthNames[d.Month()-1]))
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(colName(7), row), headerStyle)

	row = 3
	for _, k := range ranges {
		f.SetCellValue(sheetName, cell("A", row), k.start+" - "+k.end)
		for dow := 0; dow < 7; dow++ {
			text := "-"
			if list := cells[k][dow]; len(list) > 0 {
				text = strings.Join(list, "\n")
			}
			f.SetCellValue(sheetName, cell(colName(1+dow), row), text)
		}
		f.SetCellStyle(sheetName, cell("A", row), cell(colName(7), row), bodyStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("ders_programi_%s.xlsx", weekStart.Format(timeutil.DateLayout))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportExamCalendar 导出考试日历
// ═══════════════════════════════════════════════════════════
//
// 每场考试一个 VEVENT；开启提醒的考试附带提前一天的 VALARM

func (s *exportService) ExportExamCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	exams, err := s.repo.Exam.List(ctx)
	if err != nil {
		s.logger.Error("查询考试列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(exams) == 0 {
		return nil, "", ErrExportNoExams
	}
	views := examViews(exams)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campus-portal//Sinav Takvimi//TR")
	cal.SetXWRCalName("Sınav Takvimi - " + s.cfg.Term)
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	for i := range exams {
		e := &exams[i]
		day, err := timeutil.ParseDate(e.Date, s.loc)
		if err != nil {
			s.logger.Warn("跳过日期无效的考试", zap.String("id", e.ID), zap.String("date", e.Date))
			continue
		}
		start, err1 := timeutil.At(day, e.StartTime)
		end, err2 := timeutil.At(day, e.EndTime)
		if err1 != nil || err2 != nil {
			s.logger.Warn("跳过时间无效的考试", zap.String("id", e.ID))
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("exam-%s@campus-portal", e.ID))
		evt.SetDtStampTime(stamp)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("%s %s - %s", e.CourseCode, e.CourseName, examTypeLabel(e.ExamType)))
		evt.SetLocation(examLocation(e))
		evt.SetStatus(ics.ObjectStatusConfirmed)
		evt.AddCategory(examTypeLabel(e.ExamType))

		desc := s.cfg.University
		if views[i].HasConflict {
			desc += "\nÇakışma: " + strings.Join(views[i].ConflictWith, ", ")
		}
		evt.SetDescription(desc)

		if e.ReminderEnabled {
			alarm := evt.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger("-P1D")
			alarm.SetDescription("Yarın sınavınız var: "+e.CourseName)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "sinav_takvimi.ics", nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
