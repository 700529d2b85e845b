package i18n

// Message IDs. Every ID must exist in each locales/active.*.json file.
const (
	KeySelectDayAndTime = "schedule.select_day_and_time"
	KeyFillNameAndPhone = "schedule.fill_name_and_phone"

	KeyBookingSimulated = "booking.simulated_success"
	KeyBookingSuccess   = "booking.success"
	KeyBookingConflict  = "booking.time_conflict"
	KeyBookingFailed    = "booking.failed"
	KeyBookingError     = "booking.error_prefix"

	KeyErrInvalidRequest    = "error.invalid_request"
	KeyErrInvalidDate       = "error.invalid_date"
	KeyErrInvalidTime       = "error.invalid_time"
	KeyErrInvalidYear       = "error.invalid_year"
	KeyErrInvalidMonth      = "error.invalid_month"
	KeyErrDateNotDisplayed  = "error.date_not_displayed"
	KeyErrSessionNotFound   = "error.session_not_found"
	KeyErrRateLimited       = "error.rate_limited"
	KeyErrInvalidCreds      = "error.invalid_credentials"
	KeyErrNoBooking         = "error.no_booking"
	KeyErrInternal          = "error.internal"
	KeyErrAgendaUnavailable = "error.agenda_unavailable"
	KeyErrNotFound          = "error.appointment_not_found"
	KeyErrInvalidState      = "error.invalid_state"

	KeyNavServices = "nav.services"
	KeyNavPlans    = "nav.plans"
	KeyNavContact  = "nav.contact"
	KeyNavSchedule = "nav.schedule"

	KeyPageServicesTitle = "page.services_title"
	KeyPagePlansTitle    = "page.plans_title"
	KeyPageScheduleTitle = "page.schedule_title"
	KeyPageSelectDay     = "page.select_day"
	KeyPageSelectTime    = "page.select_time"
	KeyPagePatientData   = "page.patient_data"
	KeyPageName          = "page.name"
	KeyPagePhone         = "page.phone"
	KeyPageNameHint      = "page.name_placeholder"
	KeyPagePhoneHint     = "page.phone_placeholder"
	KeyPageSubmit        = "page.submit"
	KeyPageScheduling    = "page.scheduling"
	KeyPagePrevMonth     = "page.prev_month"
	KeyPageNextMonth     = "page.next_month"
	KeyPageAddToCalendar = "page.add_to_calendar"
	KeyPageClose         = "page.close"

	KeyContactTitle   = "contact.title"
	KeyContactPhone   = "contact.phone"
	KeyContactMobile  = "contact.mobile"
	KeyContactAddress = "contact.address"

	KeyFooterQuickLinks = "footer.quick_links"
	KeyFooterRights     = "footer.rights"
	KeyFooterPrivacy    = "footer.privacy"
	KeyFooterTerms      = "footer.terms"

	KeyICSSummary = "ics.summary"
)

var monthKeys = [...]string{
	"month.january", "month.february", "month.march", "month.april",
	"month.may", "month.june", "month.july", "month.august",
	"month.september", "month.october", "month.november", "month.december",
}

var weekdayKeys = [...]string{
	"weekday.sunday", "weekday.monday", "weekday.tuesday", "weekday.wednesday",
	"weekday.thursday", "weekday.friday", "weekday.saturday",
}

// AllKeys lists every message ID the application looks up.
func AllKeys() []string {
	keys := []string{
		KeySelectDayAndTime, KeyFillNameAndPhone,
		KeyBookingSimulated, KeyBookingSuccess, KeyBookingConflict, KeyBookingFailed, KeyBookingError,
		KeyErrInvalidRequest, KeyErrInvalidDate, KeyErrInvalidTime, KeyErrInvalidYear, KeyErrInvalidMonth,
		KeyErrDateNotDisplayed, KeyErrSessionNotFound, KeyErrRateLimited, KeyErrInvalidCreds,
		KeyErrNoBooking, KeyErrInternal, KeyErrAgendaUnavailable, KeyErrNotFound, KeyErrInvalidState,
		KeyNavServices, KeyNavPlans, KeyNavContact, KeyNavSchedule,
		KeyPageServicesTitle, KeyPagePlansTitle, KeyPageScheduleTitle, KeyPageSelectDay, KeyPageSelectTime,
		KeyPagePatientData, KeyPageName, KeyPagePhone, KeyPageNameHint, KeyPagePhoneHint,
		KeyPageSubmit, KeyPageScheduling, KeyPagePrevMonth, KeyPageNextMonth, KeyPageAddToCalendar, KeyPageClose,
		KeyContactTitle, KeyContactPhone, KeyContactMobile, KeyContactAddress,
		KeyFooterQuickLinks, KeyFooterRights, KeyFooterPrivacy, KeyFooterTerms,
		KeyICSSummary,
	}
	keys = append(keys, monthKeys[:]...)
	return append(keys, weekdayKeys[:]...)
}
