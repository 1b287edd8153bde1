package schema

import "fmt"

// numbered expands a family of custom fields, e.g. text1..text30.
func numbered(keyPrefix, labelPrefix string, from, to int, ft FieldType) []Field {
	out := make([]Field, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, Field{
			Key:   fmt.Sprintf("%s%d", keyPrefix, i),
			Label: fmt.Sprintf("%s%d", labelPrefix, i),
			Type:  ft,
		})
	}
	return out
}

// baselines expands baseline, baseline1..baseline10 variants of suffix.
func baselines(suffix, labelSuffix string, ft FieldType) []Field {
	out := []Field{{Key: "baseline_" + suffix, Label: "Baseline " + labelSuffix, Type: ft}}
	for i := 1; i <= 10; i++ {
		out = append(out, Field{
			Key:   fmt.Sprintf("baseline%d_%s", i, suffix),
			Label: fmt.Sprintf("Baseline%d %s", i, labelSuffix),
			Type:  ft,
		})
	}
	return out
}

func concat(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// customFields are shared by resources and assignments.
func customFields() []Field {
	return concat(
		numbered("cost", "Cost", 1, 10, TypeFloat),
		numbered("date", "Date", 1, 10, TypeDate),
		numbered("duration", "Duration", 1, 10, TypeDuration),
		numbered("finish", "Finish", 1, 10, TypeDate),
		numbered("flag", "Flag", 1, 20, TypeBoolean),
		numbered("number", "Number", 1, 20, TypeFloat),
		numbered("start", "Start", 1, 10, TypeDate),
		numbered("text", "Text", 1, 30, TypeString),
	)
}

var resourceFields = concat(
	[]Field{
		{Key: "id", Label: "ID", Type: TypeInteger},
		{Key: "unique_id", Label: "Unique ID", Type: TypeInteger},
		{Key: "parent_id", Label: "Parent ID", Type: TypeInteger},
		{Key: "calendar_unique_id", Label: "Calendar Unique ID", Type: TypeInteger},
		{Key: "objects", Label: "Objects", Type: TypeInteger},
		{Key: "name", Label: "Resource Name", Type: TypeString},
		{Key: "initials", Label: "Initials", Type: TypeString},
		{Key: "group", Label: "Group", Type: TypeString},
		{Key: "code", Label: "Code", Type: TypeString},
		{Key: "type", Label: "Type", Type: TypeString},
		{Key: "email_address", Label: "Email Address", Type: TypeString},
		{Key: "material_label", Label: "Material Label", Type: TypeString},
		{Key: "notes", Label: "Notes", Type: TypeString},
		{Key: "guid", Label: "GUID", Type: TypeString},
		{Key: "hyperlink", Label: "Hyperlink", Type: TypeString},
		{Key: "hyperlink_address", Label: "Hyperlink Address", Type: TypeString},
		{Key: "hyperlink_subaddress", Label: "Hyperlink SubAddress", Type: TypeString},
		{Key: "windows_user_account", Label: "Windows User Account", Type: TypeString},
		{Key: "booking_type", Label: "Booking Type", Type: TypeString},
		{Key: "accrue_at", Label: "Accrue At", Type: TypeString},
		{Key: "workgroup", Label: "Workgroup", Type: TypeString},
		{Key: "phonetics", Label: "Phonetics", Type: TypeString},
		{Key: "active", Label: "Active", Type: TypeBoolean},
		{Key: "budget", Label: "Budget", Type: TypeBoolean},
		{Key: "can_level", Label: "Can Level", Type: TypeBoolean},
		{Key: "enterprise", Label: "Enterprise", Type: TypeBoolean},
		{Key: "generic", Label: "Generic", Type: TypeBoolean},
		{Key: "inactive", Label: "Inactive", Type: TypeBoolean},
		{Key: "linked_fields", Label: "Linked Fields", Type: TypeBoolean},
		{Key: "overallocated", Label: "Overallocated", Type: TypeBoolean},
		{Key: "actual_cost", Label: "Actual Cost", Type: TypeFloat},
		{Key: "actual_overtime_cost", Label: "Actual Overtime Cost", Type: TypeFloat},
		{Key: "acwp", Label: "ACWP", Type: TypeFloat},
		{Key: "bcwp", Label: "BCWP", Type: TypeFloat},
		{Key: "bcws", Label: "BCWS", Type: TypeFloat},
		{Key: "budget_cost", Label: "Budget Cost", Type: TypeFloat},
		{Key: "cost", Label: "Cost", Type: TypeFloat},
		{Key: "cost_per_use", Label: "Cost Per Use", Type: TypeFloat},
		{Key: "cost_variance", Label: "Cost Variance", Type: TypeFloat},
		{Key: "cv", Label: "CV", Type: TypeFloat},
		{Key: "max_units", Label: "Max Units", Type: TypeFloat},
		{Key: "overtime_cost", Label: "Overtime Cost", Type: TypeFloat},
		{Key: "overtime_rate", Label: "Overtime Rate", Type: TypeFloat},
		{Key: "peak", Label: "Peak", Type: TypeFloat},
		{Key: "percent_work_complete", Label: "% Work Complete", Type: TypeFloat},
		{Key: "remaining_cost", Label: "Remaining Cost", Type: TypeFloat},
		{Key: "remaining_overtime_cost", Label: "Remaining Overtime Cost", Type: TypeFloat},
		{Key: "standard_rate", Label: "Standard Rate", Type: TypeFloat},
		{Key: "sv", Label: "SV", Type: TypeFloat},
		{Key: "available_from", Label: "Available From", Type: TypeDate},
		{Key: "available_to", Label: "Available To", Type: TypeDate},
		{Key: "creation_date", Label: "Creation Date", Type: TypeDate},
		{Key: "actual_overtime_work", Label: "Actual Overtime Work", Type: TypeDuration},
		{Key: "actual_work", Label: "Actual Work", Type: TypeDuration},
		{Key: "budget_work", Label: "Budget Work", Type: TypeDuration},
		{Key: "overtime_work", Label: "Overtime Work", Type: TypeDuration},
		{Key: "regular_work", Label: "Regular Work", Type: TypeDuration},
		{Key: "remaining_overtime_work", Label: "Remaining Overtime Work", Type: TypeDuration},
		{Key: "remaining_work", Label: "Remaining Work", Type: TypeDuration},
		{Key: "work", Label: "Work", Type: TypeDuration},
		{Key: "work_variance", Label: "Work Variance", Type: TypeDuration},
	},
	baselines("cost", "Cost", TypeFloat),
	baselines("work", "Work", TypeDuration),
	numbered("outline_code", "Outline Code", 1, 10, TypeString),
	customFields(),
)

var assignmentFields = concat(
	[]Field{
		{Key: "unique_id", Label: "Unique ID", Type: TypeInteger},
		{Key: "task_unique_id", Label: "Task Unique ID", Type: TypeInteger},
		{Key: "resource_unique_id", Label: "Resource Unique ID", Type: TypeInteger},
		{Key: "calendar_unique_id", Label: "Calendar Unique ID", Type: TypeInteger},
		{Key: "cost_rate_table", Label: "Cost Rate Table", Type: TypeInteger},
		{Key: "guid", Label: "GUID", Type: TypeString},
		{Key: "notes", Label: "Notes", Type: TypeString},
		{Key: "work_contour", Label: "Work Contour", Type: TypeString},
		{Key: "rate_source", Label: "Rate Source", Type: TypeString},
		{Key: "hyperlink", Label: "Hyperlink", Type: TypeString},
		{Key: "confirmed", Label: "Confirmed", Type: TypeBoolean},
		{Key: "linked_fields", Label: "Linked Fields", Type: TypeBoolean},
		{Key: "overallocated", Label: "Overallocated", Type: TypeBoolean},
		{Key: "response_pending", Label: "Response Pending", Type: TypeBoolean},
		{Key: "team_status_pending", Label: "Team Status Pending", Type: TypeBoolean},
		{Key: "update_needed", Label: "Update Needed", Type: TypeBoolean},
		{Key: "actual_cost", Label: "Actual Cost", Type: TypeFloat},
		{Key: "actual_overtime_cost", Label: "Actual Overtime Cost", Type: TypeFloat},
		{Key: "acwp", Label: "ACWP", Type: TypeFloat},
		{Key: "bcwp", Label: "BCWP", Type: TypeFloat},
		{Key: "bcws", Label: "BCWS", Type: TypeFloat},
		{Key: "cost", Label: "Cost", Type: TypeFloat},
		{Key: "cost_variance", Label: "Cost Variance", Type: TypeFloat},
		{Key: "cv", Label: "CV", Type: TypeFloat},
		{Key: "overtime_cost", Label: "Overtime Cost", Type: TypeFloat},
		{Key: "percent_work_complete", Label: "% Work Complete", Type: TypeFloat},
		{Key: "remaining_cost", Label: "Remaining Cost", Type: TypeFloat},
		{Key: "remaining_overtime_cost", Label: "Remaining Overtime Cost", Type: TypeFloat},
		{Key: "sv", Label: "SV", Type: TypeFloat},
		{Key: "units", Label: "Assignment Units", Type: TypeFloat},
		{Key: "peak", Label: "Peak", Type: TypeFloat},
		{Key: "actual_start", Label: "Actual Start", Type: TypeDate},
		{Key: "actual_finish", Label: "Actual Finish", Type: TypeDate},
		{Key: "start", Label: "Start", Type: TypeDate},
		{Key: "finish", Label: "Finish", Type: TypeDate},
		{Key: "resume", Label: "Resume", Type: TypeDate},
		{Key: "stop", Label: "Stop", Type: TypeDate},
		{Key: "created", Label: "Created", Type: TypeDate},
		{Key: "planned_start", Label: "Planned Start", Type: TypeDate},
		{Key: "planned_finish", Label: "Planned Finish", Type: TypeDate},
		{Key: "actual_overtime_work", Label: "Actual Overtime Work", Type: TypeDuration},
		{Key: "actual_work", Label: "Actual Work", Type: TypeDuration},
		{Key: "delay", Label: "Assignment Delay", Type: TypeDuration},
		{Key: "leveling_delay", Label: "Leveling Delay", Type: TypeDuration},
		{Key: "overtime_work", Label: "Overtime Work", Type: TypeDuration},
		{Key: "planned_work", Label: "Planned Work", Type: TypeDuration},
		{Key: "regular_work", Label: "Regular Work", Type: TypeDuration},
		{Key: "remaining_overtime_work", Label: "Remaining Overtime Work", Type: TypeDuration},
		{Key: "remaining_work", Label: "Remaining Work", Type: TypeDuration},
		{Key: "work", Label: "Work", Type: TypeDuration},
		{Key: "work_variance", Label: "Work Variance", Type: TypeDuration},
	},
	baselines("cost", "Cost", TypeFloat),
	baselines("work", "Work", TypeDuration),
	baselines("start", "Start", TypeDate),
	baselines("finish", "Finish", TypeDate),
	customFields(),
)

var projectFields = []Field{
	{Key: "name", Label: "Name", Type: TypeString},
	{Key: "project_title", Label: "Project Title", Type: TypeString},
	{Key: "subject", Label: "Subject", Type: TypeString},
	{Key: "author", Label: "Author", Type: TypeString},
	{Key: "manager", Label: "Manager", Type: TypeString},
	{Key: "company", Label: "Company", Type: TypeString},
	{Key: "category", Label: "Category", Type: TypeString},
	{Key: "keywords", Label: "Keywords", Type: TypeString},
	{Key: "comments", Label: "Comments", Type: TypeString},
	{Key: "guid", Label: "GUID", Type: TypeString},
	{Key: "project_id", Label: "Project ID", Type: TypeString},
	{Key: "currency_code", Label: "Currency Code", Type: TypeString},
	{Key: "currency_symbol", Label: "Currency Symbol", Type: TypeString},
	{Key: "default_calendar_name", Label: "Default Calendar Name", Type: TypeString},
	{Key: "file_application", Label: "File Application", Type: TypeString},
	{Key: "file_type", Label: "File Type", Type: TypeString},
	{Key: "full_application_name", Label: "Full Application Name", Type: TypeString},
	{Key: "short_application_name", Label: "Short Application Name", Type: TypeString},
	{Key: "last_author", Label: "Last Author", Type: TypeString},
	{Key: "schedule_from", Label: "Schedule From", Type: TypeString},
	{Key: "default_task_type", Label: "Default Task Type", Type: TypeString},
	{Key: "default_duration_units", Label: "Default Duration Units", Type: TypeString},
	{Key: "default_work_units", Label: "Default Work Units", Type: TypeString},
	{Key: "week_start_day", Label: "Week Start Day", Type: TypeString},
	{Key: "template", Label: "Template", Type: TypeString},
	{Key: "hyperlink_base", Label: "Hyperlink Base", Type: TypeString},
	{Key: "mpxj_version", Label: "MPXJ Version", Type: TypeString},
	{Key: "autolink", Label: "Autolink", Type: TypeBoolean},
	{Key: "honor_constraints", Label: "Honor Constraints", Type: TypeBoolean},
	{Key: "editable_actual_costs", Label: "Editable Actual Costs", Type: TypeBoolean},
	{Key: "multiple_critical_paths", Label: "Multiple Critical Paths", Type: TypeBoolean},
	{Key: "new_tasks_effort_driven", Label: "New Tasks Effort Driven", Type: TypeBoolean},
	{Key: "new_tasks_estimated", Label: "New Tasks Estimated", Type: TypeBoolean},
	{Key: "split_in_progress_tasks", Label: "Split In Progress Tasks", Type: TypeBoolean},
	{Key: "calculate_multiple_critical_paths", Label: "Calculate Multiple Critical Paths", Type: TypeBoolean},
	{Key: "minutes_per_day", Label: "Minutes Per Day", Type: TypeInteger},
	{Key: "minutes_per_week", Label: "Minutes Per Week", Type: TypeInteger},
	{Key: "days_per_month", Label: "Days Per Month", Type: TypeInteger},
	{Key: "currency_digits", Label: "Currency Digits", Type: TypeInteger},
	{Key: "fiscal_year_start_month", Label: "Fiscal Year Start Month", Type: TypeInteger},
	{Key: "revision", Label: "Revision", Type: TypeInteger},
	{Key: "application_version", Label: "Application Version", Type: TypeInteger},
	{Key: "default_standard_rate", Label: "Default Standard Rate", Type: TypeFloat},
	{Key: "default_overtime_rate", Label: "Default Overtime Rate", Type: TypeFloat},
	{Key: "percentage_complete", Label: "Percentage Complete", Type: TypeFloat},
	{Key: "cost", Label: "Cost", Type: TypeFloat},
	{Key: "actual_cost", Label: "Actual Cost", Type: TypeFloat},
	{Key: "baseline_cost", Label: "Baseline Cost", Type: TypeFloat},
	{Key: "start_date", Label: "Start Date", Type: TypeDate},
	{Key: "finish_date", Label: "Finish Date", Type: TypeDate},
	{Key: "status_date", Label: "Status Date", Type: TypeDate},
	{Key: "current_date", Label: "Current Date", Type: TypeDate},
	{Key: "creation_date", Label: "Creation Date", Type: TypeDate},
	{Key: "last_saved", Label: "Last Saved", Type: TypeDate},
	{Key: "last_printed", Label: "Last Printed", Type: TypeDate},
	{Key: "baseline_date", Label: "Baseline Date", Type: TypeDate},
	{Key: "actual_start", Label: "Actual Start", Type: TypeDate},
	{Key: "actual_finish", Label: "Actual Finish", Type: TypeDate},
	{Key: "default_start_time", Label: "Default Start Time", Type: TypeDate},
	{Key: "default_end_time", Label: "Default End Time", Type: TypeDate},
	{Key: "duration", Label: "Duration", Type: TypeDuration},
	{Key: "actual_duration", Label: "Actual Duration", Type: TypeDuration},
	{Key: "baseline_duration", Label: "Baseline Duration", Type: TypeDuration},
	{Key: "work", Label: "Work", Type: TypeDuration},
	{Key: "actual_work", Label: "Actual Work", Type: TypeDuration},
	{Key: "baseline_work", Label: "Baseline Work", Type: TypeDuration},
	{Key: "critical_slack_limit", Label: "Critical Slack Limit", Type: TypeDuration},
	{Key: "start_variance", Label: "Start Variance", Type: TypeDuration},
	{Key: "finish_variance", Label: "Finish Variance", Type: TypeDuration},
}
