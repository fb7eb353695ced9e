package get_week_availability

import (
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// Resolver вычисляет недельную сетку доступности тренера из трех независимых
// наборов правил. Приоритет задан явным упорядоченным списком ярусов:
// еженедельное расписание -> еженедельные блокировки -> исключения на дату.
// Каждый следующий ярус может перезаписать результат предыдущего; внутри
// яруса побеждает первая подходящая запись в порядке входного списка.
type Resolver struct {
	logger Logger
}

// NewResolver создает новый резолвер
func NewResolver(logger Logger) *Resolver {
	return &Resolver{logger: logger}
}

// slotState промежуточное состояние одной ячейки сетки
type slotState struct {
	status domain.SlotStatus
	title  *string
}

// tierResolver один ярус приоритета: смотрит на ячейку (дата + слот)
// и либо перезаписывает состояние, либо оставляет его как есть
type tierResolver func(date time.Time, slotIndex int, slot types.TimeString, state *slotState)

// ResolveWeek вычисляет сетку доступности: ровно 7 дней по 12 слотов.
// Чистая функция от аргументов - повторный вызов с теми же входными данными
// дает идентичный результат; входные коллекции не модифицируются.
//
// weekDates - ровно 7 последовательных дат по возрастанию (обычно с понедельника),
// иначе возвращается ErrInvalidWeekWindow.
// today используется только для вычисления флага IsToday.
// Записи с некорректным временем (не HH:MM) пропускаются с предупреждением
// в лог, не прерывая вычисление.
func (r *Resolver) ResolveWeek(
	weekDates []time.Time,
	today time.Time,
	schedules []*domain.WeeklyScheduleRule,
	blocks []*domain.RecurringBlock,
	overrides []*domain.DateOverride,
) ([]domain.DayAvailability, error) {
	if !domain.IsWeekWindow(weekDates) {
		return nil, ErrInvalidWeekWindow
	}

	tiers := []tierResolver{
		r.weeklyScheduleTier(r.normalizeSchedules(schedules)),
		r.recurringBlockTier(r.normalizeBlocks(blocks)),
		r.dateOverrideTier(r.normalizeOverrides(overrides)),
	}

	slotTimes := domain.SlotTimes()
	days := make([]domain.DayAvailability, len(weekDates))

	for i, date := range weekDates {
		slots := make([]domain.TimeSlot, len(slotTimes))

		for j, slotTime := range slotTimes {
			state := slotState{status: domain.SlotUnavailable}

			for _, tier := range tiers {
				tier(date, j, slotTime, &state)
			}

			slots[j] = domain.TimeSlot{
				Time:   slotTime,
				Status: state.status,
				Title:  state.title,
			}
		}

		days[i] = domain.DayAvailability{
			Date:      date,
			DayOfWeek: int(date.Weekday()),
			IsToday:   domain.SameDate(date, today),
			TimeSlots: slots,
		}
	}

	return days, nil
}

// Нормализованные формы правил: время уже проверено и приведено к HH:MM

type weeklyRule struct {
	dayOfWeek   int
	startTime   types.TimeString
	endTime     types.TimeString
	isAvailable bool
}

type weeklyBlock struct {
	dayOfWeek int
	startTime types.TimeString
	endTime   types.TimeString
	title     string
}

type dayOverride struct {
	date         time.Time
	startTime    *types.TimeString
	endTime      *types.TimeString
	overrideType domain.OverrideType
	title        *string
}

// weeklyScheduleTier ярус еженедельного расписания: первая запись с
// совпадающим днем недели; при isAvailable и попадании начала слота
// в [start, end) статус становится available
func (r *Resolver) weeklyScheduleTier(rules []weeklyRule) tierResolver {
	return func(date time.Time, _ int, slot types.TimeString, state *slotState) {
		for _, rule := range rules {
			if rule.dayOfWeek != int(date.Weekday()) {
				continue
			}

			// Правило на день недели должно быть одно; дубликаты терпим,
			// детерминированно предпочитая первое во входном порядке
			if rule.isAvailable && slotInRange(slot, rule.startTime, rule.endTime) {
				state.status = domain.SlotAvailable
				state.title = nil
			}
			return
		}
	}
}

// recurringBlockTier ярус еженедельных блокировок: первая блокировка,
// накрывающая начало слота, перезаписывает статус на blocked
func (r *Resolver) recurringBlockTier(blocks []weeklyBlock) tierResolver {
	return func(date time.Time, _ int, slot types.TimeString, state *slotState) {
		for _, block := range blocks {
			if block.dayOfWeek != int(date.Weekday()) {
				continue
			}

			if slotInRange(slot, block.startTime, block.endTime) {
				title := block.title
				state.status = domain.SlotBlocked
				state.title = &title
				return
			}
		}
	}
}

// dateOverrideTier высший ярус - исключения на конкретную дату.
// Исключение с временным диапазоном перезаписывает статус независимо от
// результата предыдущих ярусов. Custom исключение статус не меняет, но его
// заголовок прикрепляется к первому слоту дня как пометка на весь день.
func (r *Resolver) dateOverrideTier(overrides []dayOverride) tierResolver {
	return func(date time.Time, slotIndex int, slot types.TimeString, state *slotState) {
		for _, override := range overrides {
			if !domain.SameDate(override.date, date) {
				continue
			}

			if override.overrideType == domain.OverrideCustom {
				if slotIndex == 0 && override.title != nil {
					state.title = override.title
				}
				continue
			}

			if slotInRange(slot, *override.startTime, *override.endTime) {
				if override.overrideType == domain.OverrideUnavailable {
					state.status = domain.SlotOverrideUnavailable
				} else {
					state.status = domain.SlotOverrideAvailable
				}
				state.title = override.title
				return
			}
		}
	}
}

// slotInRange проверяет попадание начала слота в полуинтервал [start, end)
// Конец слота намеренно не проверяется: часовой слот считается накрытым,
// если диапазон содержит его начало
func slotInRange(slot, start, end types.TimeString) bool {
	return !slot.IsBefore(start) && slot.IsBefore(end)
}

// Нормализация входных коллекций: парсим время, отбрасываем нечитаемые
// записи с предупреждением в лог, сохраняя входной порядок

func (r *Resolver) normalizeSchedules(schedules []*domain.WeeklyScheduleRule) []weeklyRule {
	rules := make([]weeklyRule, 0, len(schedules))

	for _, s := range schedules {
		start, err := types.NewTimeStringFromString(s.StartTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping weekly schedule rule id=%d: %v", s.ID, err)
			continue
		}

		end, err := types.NewTimeStringFromString(s.EndTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping weekly schedule rule id=%d: %v", s.ID, err)
			continue
		}

		rules = append(rules, weeklyRule{
			dayOfWeek:   s.DayOfWeek,
			startTime:   start,
			endTime:     end,
			isAvailable: s.IsAvailable,
		})
	}

	return rules
}

func (r *Resolver) normalizeBlocks(blocks []*domain.RecurringBlock) []weeklyBlock {
	normalized := make([]weeklyBlock, 0, len(blocks))

	for _, b := range blocks {
		start, err := types.NewTimeStringFromString(b.StartTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping recurring block id=%d: %v", b.ID, err)
			continue
		}

		end, err := types.NewTimeStringFromString(b.EndTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping recurring block id=%d: %v", b.ID, err)
			continue
		}

		normalized = append(normalized, weeklyBlock{
			dayOfWeek: b.DayOfWeek,
			startTime: start,
			endTime:   end,
			title:     b.Title,
		})
	}

	return normalized
}

func (r *Resolver) normalizeOverrides(overrides []*domain.DateOverride) []dayOverride {
	normalized := make([]dayOverride, 0, len(overrides))

	for _, o := range overrides {
		if !o.OverrideType.IsValid() {
			r.logger.Warn("availability: skipping date override id=%d: unknown type %q", o.ID, o.OverrideType)
			continue
		}

		// Custom исключение - пометка на весь день, временной диапазон не нужен
		if o.OverrideType == domain.OverrideCustom {
			normalized = append(normalized, dayOverride{
				date:         o.OverrideDate,
				overrideType: o.OverrideType,
				title:        o.Title,
			})
			continue
		}

		if !o.HasTimeRange() {
			r.logger.Warn("availability: skipping date override id=%d: type %q requires a time range", o.ID, o.OverrideType)
			continue
		}

		start, err := types.NewTimeStringFromString(o.StartTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping date override id=%d: %v", o.ID, err)
			continue
		}

		end, err := types.NewTimeStringFromString(o.EndTime.String())
		if err != nil {
			r.logger.Warn("availability: skipping date override id=%d: %v", o.ID, err)
			continue
		}

		normalized = append(normalized, dayOverride{
			date:         o.OverrideDate,
			startTime:    &start,
			endTime:      &end,
			overrideType: o.OverrideType,
			title:        o.Title,
		})
	}

	return normalized
}
