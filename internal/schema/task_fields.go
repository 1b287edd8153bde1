package schema

// taskFields lists every task attribute the export can carry, with the type
// each value is converted to when read.
var taskFields = []Field{
	{Key: "active", Label: "Active", Type: TypeBoolean},
	{Key: "activity_id", Label: "Activity ID", Type: TypeString},
	{Key: "activity_status", Label: "Activity Status", Type: TypeString},
	{Key: "activity_type", Label: "Activity Type", Type: TypeString},
	{Key: "actual_cost", Label: "Actual Cost", Type: TypeFloat},
	{Key: "actual_duration", Label: "Actual Duration", Type: TypeDuration},
	{Key: "actual_duration_units", Label: "Actual Duration Units", Type: TypeString},
	{Key: "actual_finish", Label: "Actual Finish", Type: TypeDate},
	{Key: "actual_overtime_cost", Label: "Actual Overtime Cost", Type: TypeFloat},
	{Key: "actual_overtime_work", Label: "Actual Overtime Work", Type: TypeDuration},
	{Key: "actual_overtime_work_protected", Label: "Actual Overtime Work Protected", Type: TypeDuration},
	{Key: "actual_start", Label: "Actual Start", Type: TypeDate},
	{Key: "actual_work", Label: "Actual Work", Type: TypeDuration},
	{Key: "actual_work_protected", Label: "Actual Work Protected", Type: TypeDuration},
	{Key: "acwp", Label: "ACWP", Type: TypeFloat},
	{Key: "assignment", Label: "Assignment", Type: TypeString},
	{Key: "assignment_delay", Label: "Assignment Delay", Type: TypeString},
	{Key: "assignment_owner", Label: "Assignment Owner", Type: TypeString},
	{Key: "assignment_units", Label: "Assignment Units", Type: TypeString},
	{Key: "baseline10_budget_cost", Label: "Baseline10 Budget Cost", Type: TypeFloat},
	{Key: "baseline10_budget_work", Label: "Baseline10 Budget Work", Type: TypeFloat},
	{Key: "baseline10_cost", Label: "Baseline10 Cost", Type: TypeFloat},
	{Key: "baseline10_deliverable_finish", Label: "Baseline10 Deliverable Finish", Type: TypeDate},
	{Key: "baseline10_deliverable_start", Label: "Baseline10 Deliverable Start", Type: TypeDate},
	{Key: "baseline10_duration", Label: "Baseline10 Duration", Type: TypeDuration},
	{Key: "baseline10_duration_estimated", Label: "Baseline10 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline10_duration_units", Label: "Baseline10 Duration Units", Type: TypeString},
	{Key: "baseline10_estimated_duration", Label: "Baseline10 Estimated Duration", Type: TypeDuration},
	{Key: "baseline10_estimated_finish", Label: "Baseline10 Estimated Finish", Type: TypeDate},
	{Key: "baseline10_estimated_start", Label: "Baseline10 Estimated Start", Type: TypeDate},
	{Key: "baseline10_finish", Label: "Baseline10 Finish", Type: TypeDate},
	{Key: "baseline10_fixed_cost", Label: "Baseline10 Fixed Cost", Type: TypeFloat},
	{Key: "baseline10_fixed_cost_accrual", Label: "Baseline10 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline10_start", Label: "Baseline10 Start", Type: TypeDate},
	{Key: "baseline10_work", Label: "Baseline10 Work", Type: TypeDuration},
	{Key: "baseline1_budget_cost", Label: "Baseline1 Budget Cost", Type: TypeFloat},
	{Key: "baseline1_budget_work", Label: "Baseline1 Budget Work", Type: TypeFloat},
	{Key: "baseline1_cost", Label: "Baseline1 Cost", Type: TypeFloat},
	{Key: "baseline1_deliverable_finish", Label: "Baseline1 Deliverable Finish", Type: TypeDate},
	{Key: "baseline1_deliverable_start", Label: "Baseline1 Deliverable Start", Type: TypeDate},
	{Key: "baseline1_duration", Label: "Baseline1 Duration", Type: TypeDuration},
	{Key: "baseline1_duration_estimated", Label: "Baseline1 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline1_duration_units", Label: "Baseline1 Duration Units", Type: TypeString},
	{Key: "baseline1_estimated_duration", Label: "Baseline1 Estimated Duration", Type: TypeDuration},
	{Key: "baseline1_estimated_finish", Label: "Baseline1 Estimated Finish", Type: TypeDate},
	{Key: "baseline1_estimated_start", Label: "Baseline1 Estimated Start", Type: TypeDate},
	{Key: "baseline1_finish", Label: "Baseline1 Finish", Type: TypeDate},
	{Key: "baseline1_fixed_cost", Label: "Baseline1 Fixed Cost", Type: TypeFloat},
	{Key: "baseline1_fixed_cost_accrual", Label: "Baseline1 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline1_start", Label: "Baseline1 Start", Type: TypeDate},
	{Key: "baseline1_work", Label: "Baseline1 Work", Type: TypeDuration},
	{Key: "baseline2_budget_cost", Label: "Baseline2 Budget Cost", Type: TypeFloat},
	{Key: "baseline2_budget_work", Label: "Baseline2 Budget Work", Type: TypeFloat},
	{Key: "baseline2_cost", Label: "Baseline2 Cost", Type: TypeFloat},
	{Key: "baseline2_deliverable_finish", Label: "Baseline2 Deliverable Finish", Type: TypeDate},
	{Key: "baseline2_deliverable_start", Label: "Baseline2 Deliverable Start", Type: TypeDate},
	{Key: "baseline2_duration", Label: "Baseline2 Duration", Type: TypeDuration},
	{Key: "baseline2_duration_estimated", Label: "Baseline2 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline2_duration_units", Label: "Baseline2 Duration Units", Type: TypeString},
	{Key: "baseline2_estimated_duration", Label: "Baseline2 Estimated Duration", Type: TypeDuration},
	{Key: "baseline2_estimated_finish", Label: "Baseline2 Estimated Finish", Type: TypeDate},
	{Key: "baseline2_estimated_start", Label: "Baseline2 Estimated Start", Type: TypeDate},
	{Key: "baseline2_finish", Label: "Baseline2 Finish", Type: TypeDate},
	{Key: "baseline2_fixed_cost", Label: "Baseline2 Fixed Cost", Type: TypeFloat},
	{Key: "baseline2_fixed_cost_accrual", Label: "Baseline2 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline2_start", Label: "Baseline2 Start", Type: TypeDate},
	{Key: "baseline2_work", Label: "Baseline2 Work", Type: TypeDuration},
	{Key: "baseline3_budget_cost", Label: "Baseline3 Budget Cost", Type: TypeFloat},
	{Key: "baseline3_budget_work", Label: "Baseline3 Budget Work", Type: TypeFloat},
	{Key: "baseline3_cost", Label: "Baseline3 Cost", Type: TypeFloat},
	{Key: "baseline3_deliverable_finish", Label: "Baseline3 Deliverable Finish", Type: TypeDate},
	{Key: "baseline3_deliverable_start", Label: "Baseline3 Deliverable Start", Type: TypeDate},
	{Key: "baseline3_duration", Label: "Baseline3 Duration", Type: TypeDuration},
	{Key: "baseline3_duration_estimated", Label: "Baseline3 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline3_duration_units", Label: "Baseline3 Duration Units", Type: TypeString},
	{Key: "baseline3_estimated_duration", Label: "Baseline3 Estimated Duration", Type: TypeDuration},
	{Key: "baseline3_estimated_finish", Label: "Baseline3 Estimated Finish", Type: TypeDate},
	{Key: "baseline3_estimated_start", Label: "Baseline3 Estimated Start", Type: TypeDate},
	{Key: "baseline3_finish", Label: "Baseline3 Finish", Type: TypeDate},
	{Key: "baseline3_fixed_cost", Label: "Baseline3 Fixed Cost", Type: TypeFloat},
	{Key: "baseline3_fixed_cost_accrual", Label: "Baseline3 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline3_start", Label: "Baseline3 Start", Type: TypeDate},
	{Key: "baseline3_work", Label: "Baseline3 Work", Type: TypeDuration},
	{Key: "baseline4_budget_cost", Label: "Baseline4 Budget Cost", Type: TypeFloat},
	{Key: "baseline4_budget_work", Label: "Baseline4 Budget Work", Type: TypeFloat},
	{Key: "baseline4_cost", Label: "Baseline4 Cost", Type: TypeFloat},
	{Key: "baseline4_deliverable_finish", Label: "Baseline4 Deliverable Finish", Type: TypeDate},
	{Key: "baseline4_deliverable_start", Label: "Baseline4 Deliverable Start", Type: TypeDate},
	{Key: "baseline4_duration", Label: "Baseline4 Duration", Type: TypeDuration},
	{Key: "baseline4_duration_estimated", Label: "Baseline4 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline4_duration_units", Label: "Baseline4 Duration Units", Type: TypeString},
	{Key: "baseline4_estimated_duration", Label: "Baseline4 Estimated Duration", Type: TypeDuration},
	{Key: "baseline4_estimated_finish", Label: "Baseline4 Estimated Finish", Type: TypeDate},
	{Key: "baseline4_estimated_start", Label: "Baseline4 Estimated Start", Type: TypeDate},
	{Key: "baseline4_finish", Label: "Baseline4 Finish", Type: TypeDate},
	{Key: "baseline4_fixed_cost", Label: "Baseline4 Fixed Cost", Type: TypeFloat},
	{Key: "baseline4_fixed_cost_accrual", Label: "Baseline4 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline4_start", Label: "Baseline4 Start", Type: TypeDate},
	{Key: "baseline4_work", Label: "Baseline4 Work", Type: TypeDuration},
	{Key: "baseline5_budget_cost", Label: "Baseline5 Budget Cost", Type: TypeFloat},
	{Key: "baseline5_budget_work", Label: "Baseline5 Budget Work", Type: TypeFloat},
	{Key: "baseline5_cost", Label: "Baseline5 Cost", Type: TypeFloat},
	{Key: "baseline5_deliverable_finish", Label: "Baseline5 Deliverable Finish", Type: TypeDate},
	{Key: "baseline5_deliverable_start", Label: "Baseline5 Deliverable Start", Type: TypeDate},
	{Key: "baseline5_duration", Label: "Baseline5 Duration", Type: TypeDuration},
	{Key: "baseline5_duration_estimated", Label: "Baseline5 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline5_duration_units", Label: "Baseline5 Duration Units", Type: TypeString},
	{Key: "baseline5_estimated_duration", Label: "Baseline5 Estimated Duration", Type: TypeDuration},
	{Key: "baseline5_estimated_finish", Label: "Baseline5 Estimated Finish", Type: TypeDate},
	{Key: "baseline5_estimated_start", Label: "Baseline5 Estimated Start", Type: TypeDate},
	{Key: "baseline5_finish", Label: "Baseline5 Finish", Type: TypeDate},
	{Key: "baseline5_fixed_cost", Label: "Baseline5 Fixed Cost", Type: TypeFloat},
	{Key: "baseline5_fixed_cost_accrual", Label: "Baseline5 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline5_start", Label: "Baseline5 Start", Type: TypeDate},
	{Key: "baseline5_work", Label: "Baseline5 Work", Type: TypeDuration},
	{Key: "baseline6_budget_cost", Label: "Baseline6 Budget Cost", Type: TypeFloat},
	{Key: "baseline6_budget_work", Label: "Baseline6 Budget Work", Type: TypeFloat},
	{Key: "baseline6_cost", Label: "Baseline6 Cost", Type: TypeFloat},
	{Key: "baseline6_deliverable_finish", Label: "Baseline6 Deliverable Finish", Type: TypeDate},
	{Key: "baseline6_deliverable_start", Label: "Baseline6 Deliverable Start", Type: TypeDate},
	{Key: "baseline6_duration", Label: "Baseline6 Duration", Type: TypeDuration},
	{Key: "baseline6_duration_estimated", Label: "Baseline6 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline6_duration_units", Label: "Baseline6 Duration Units", Type: TypeString},
	{Key: "baseline6_estimated_duration", Label: "Baseline6 Estimated Duration", Type: TypeDuration},
	{Key: "baseline6_estimated_finish", Label: "Baseline6 Estimated Finish", Type: TypeDate},
	{Key: "baseline6_estimated_start", Label: "Baseline6 Estimated Start", Type: TypeDate},
	{Key: "baseline6_finish", Label: "Baseline6 Finish", Type: TypeDate},
	{Key: "baseline6_fixed_cost", Label: "Baseline6 Fixed Cost", Type: TypeFloat},
	{Key: "baseline6_fixed_cost_accrual", Label: "Baseline6 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline6_start", Label: "Baseline6 Start", Type: TypeDate},
	{Key: "baseline6_work", Label: "Baseline6 Work", Type: TypeDuration},
	{Key: "baseline7_budget_cost", Label: "Baseline7 Budget Cost", Type: TypeFloat},
	{Key: "baseline7_budget_work", Label: "Baseline7 Budget Work", Type: TypeFloat},
	{Key: "baseline7_cost", Label: "Baseline7 Cost", Type: TypeFloat},
	{Key: "baseline7_deliverable_finish", Label: "Baseline7 Deliverable Finish", Type: TypeDate},
	{Key: "baseline7_deliverable_start", Label: "Baseline7 Deliverable Start", Type: TypeDate},
	{Key: "baseline7_duration", Label: "Baseline7 Duration", Type: TypeDuration},
	{Key: "baseline7_duration_estimated", Label: "Baseline7 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline7_duration_units", Label: "Baseline7 Duration Units", Type: TypeString},
	{Key: "baseline7_estimated_duration", Label: "Baseline7 Estimated Duration", Type: TypeDuration},
	{Key: "baseline7_estimated_finish", Label: "Baseline7 Estimated Finish", Type: TypeDate},
	{Key: "baseline7_estimated_start", Label: "Baseline7 Estimated Start", Type: TypeDate},
	{Key: "baseline7_finish", Label: "Baseline7 Finish", Type: TypeDate},
	{Key: "baseline7_fixed_cost", Label: "Baseline7 Fixed Cost", Type: TypeFloat},
	{Key: "baseline7_fixed_cost_accrual", Label: "Baseline7 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline7_start", Label: "Baseline7 Start", Type: TypeDate},
	{Key: "baseline7_work", Label: "Baseline7 Work", Type: TypeDuration},
	{Key: "baseline8_budget_cost", Label: "Baseline8 Budget Cost", Type: TypeFloat},
	{Key: "baseline8_budget_work", Label: "Baseline8 Budget Work", Type: TypeFloat},
	{Key: "baseline8_cost", Label: "Baseline8 Cost", Type: TypeFloat},
	{Key: "baseline8_deliverable_finish", Label: "Baseline8 Deliverable Finish", Type: TypeDate},
	{Key: "baseline8_deliverable_start", Label: "Baseline8 Deliverable Start", Type: TypeDate},
	{Key: "baseline8_duration", Label: "Baseline8 Duration", Type: TypeDuration},
	{Key: "baseline8_duration_estimated", Label: "Baseline8 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline8_duration_units", Label: "Baseline8 Duration Units", Type: TypeString},
	{Key: "baseline8_estimated_duration", Label: "Baseline8 Estimated Duration", Type: TypeDuration},
	{Key: "baseline8_estimated_finish", Label: "Baseline8 Estimated Finish", Type: TypeDate},
	{Key: "baseline8_estimated_start", Label: "Baseline8 Estimated Start", Type: TypeDate},
	{Key: "baseline8_finish", Label: "Baseline8 Finish", Type: TypeDate},
	{Key: "baseline8_fixed_cost", Label: "Baseline8 Fixed Cost", Type: TypeFloat},
	{Key: "baseline8_fixed_cost_accrual", Label: "Baseline8 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline8_start", Label: "Baseline8 Start", Type: TypeDate},
	{Key: "baseline8_work", Label: "Baseline8 Work", Type: TypeDuration},
	{Key: "baseline9_budget_cost", Label: "Baseline9 Budget Cost", Type: TypeFloat},
	{Key: "baseline9_budget_work", Label: "Baseline9 Budget Work", Type: TypeFloat},
	{Key: "baseline9_cost", Label: "Baseline9 Cost", Type: TypeFloat},
	{Key: "baseline9_deliverable_finish", Label: "Baseline9 Deliverable Finish", Type: TypeDate},
	{Key: "baseline9_deliverable_start", Label: "Baseline9 Deliverable Start", Type: TypeDate},
	{Key: "baseline9_duration", Label: "Baseline9 Duration", Type: TypeDuration},
	{Key: "baseline9_duration_estimated", Label: "Baseline9 Duration Estimated", Type: TypeBoolean},
	{Key: "baseline9_duration_units", Label: "Baseline9 Duration Units", Type: TypeString},
	{Key: "baseline9_estimated_duration", Label: "Baseline9 Estimated Duration", Type: TypeDuration},
	{Key: "baseline9_estimated_finish", Label: "Baseline9 Estimated Finish", Type: TypeDate},
	{Key: "baseline9_estimated_start", Label: "Baseline9 Estimated Start", Type: TypeDate},
	{Key: "baseline9_finish", Label: "Baseline9 Finish", Type: TypeDate},
	{Key: "baseline9_fixed_cost", Label: "Baseline9 Fixed Cost", Type: TypeFloat},
	{Key: "baseline9_fixed_cost_accrual", Label: "Baseline9 Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline9_start", Label: "Baseline9 Start", Type: TypeDate},
	{Key: "baseline9_work", Label: "Baseline9 Work", Type: TypeDuration},
	{Key: "baseline_budget_cost", Label: "Baseline Budget Cost", Type: TypeFloat},
	{Key: "baseline_budget_work", Label: "Baseline Budget Work", Type: TypeDuration},
	{Key: "baseline_cost", Label: "Baseline Cost", Type: TypeFloat},
	{Key: "baseline_deliverable_finish", Label: "Baseline Deliverable Finish", Type: TypeDate},
	{Key: "baseline_deliverable_start", Label: "Baseline Deliverable Start", Type: TypeDate},
	{Key: "baseline_duration", Label: "Baseline Duration", Type: TypeDuration},
	{Key: "baseline_duration_estimated", Label: "Baseline Duration Estimated", Type: TypeBoolean},
	{Key: "baseline_duration_units", Label: "Baseline Duration Units", Type: TypeString},
	{Key: "baseline_estimated_duration", Label: "Baseline Estimated Duration", Type: TypeDuration},
	{Key: "baseline_estimated_finish", Label: "Baseline Estimated Finish", Type: TypeDate},
	{Key: "baseline_estimated_start", Label: "Baseline Estimated Start", Type: TypeDate},
	{Key: "baseline_finish", Label: "Baseline Finish", Type: TypeDate},
	{Key: "baseline_fixed_cost", Label: "Baseline Fixed Cost", Type: TypeFloat},
	{Key: "baseline_fixed_cost_accrual", Label: "Baseline Fixed Cost Accrual", Type: TypeString},
	{Key: "baseline_start", Label: "Baseline Start", Type: TypeDate},
	{Key: "baseline_work", Label: "Baseline Work", Type: TypeDuration},
	{Key: "bcwp", Label: "BCWP", Type: TypeFloat},
	{Key: "bcws", Label: "BCWS", Type: TypeFloat},
	{Key: "bid_item", Label: "Bid Item", Type: TypeString},
	{Key: "board_status", Label: "Board Status", Type: TypeString},
	{Key: "budget_cost", Label: "Budget Cost", Type: TypeFloat},
	{Key: "budget_work", Label: "Budget Work", Type: TypeDuration},
	{Key: "calendar", Label: "Task Calendar", Type: TypeString},
	{Key: "calendar_unique_id", Label: "Calendar Unique ID", Type: TypeInteger},
	{Key: "category_of_work", Label: "Category of Work", Type: TypeString},
	{Key: "complete_through", Label: "Complete Through", Type: TypeDate},
	{Key: "confirmed", Label: "Confirmed", Type: TypeBoolean},
	{Key: "constraint_date", Label: "Constraint Date", Type: TypeDate},
	{Key: "constraint_type", Label: "Constraint Type", Type: TypeString},
	{Key: "contact", Label: "Contact", Type: TypeString},
	{Key: "cost", Label: "Cost", Type: TypeFloat},
	{Key: "cost1", Label: "Cost1", Type: TypeFloat},
	{Key: "cost10", Label: "Cost10", Type: TypeFloat},
	{Key: "cost2", Label: "Cost2", Type: TypeFloat},
	{Key: "cost3", Label: "Cost3", Type: TypeFloat},
	{Key: "cost4", Label: "Cost4", Type: TypeFloat},
	{Key: "cost5", Label: "Cost5", Type: TypeFloat},
	{Key: "cost6", Label: "Cost6", Type: TypeFloat},
	{Key: "cost7", Label: "Cost7", Type: TypeFloat},
	{Key: "cost8", Label: "Cost8", Type: TypeFloat},
	{Key: "cost9", Label: "Cost9", Type: TypeFloat},
	{Key: "cost_rate_table", Label: "Cost Rate Table", Type: TypeString},
	{Key: "cost_variance", Label: "Cost Variance", Type: TypeFloat},
	{Key: "cpi", Label: "CPI", Type: TypeFloat},
	{Key: "created", Label: "Created", Type: TypeDate},
	{Key: "critical", Label: "Critical", Type: TypeBoolean},
	{Key: "cv", Label: "CV", Type: TypeFloat},
	{Key: "cvpercent", Label: "CV%", Type: TypeFloat},
	{Key: "date1", Label: "Date1", Type: TypeDate},
	{Key: "date10", Label: "Date10", Type: TypeDate},
	{Key: "date2", Label: "Date2", Type: TypeDate},
	{Key: "date3", Label: "Date3", Type: TypeDate},
	{Key: "date4", Label: "Date4", Type: TypeDate},
	{Key: "date5", Label: "Date5", Type: TypeDate},
	{Key: "date6", Label: "Date6", Type: TypeDate},
	{Key: "date7", Label: "Date7", Type: TypeDate},
	{Key: "date8", Label: "Date8", Type: TypeDate},
	{Key: "date9", Label: "Date9", Type: TypeDate},
	{Key: "deadline", Label: "Deadline", Type: TypeDate},
	{Key: "deliverable_finish", Label: "Deliverable Finish", Type: TypeDate},
	{Key: "deliverable_guid", Label: "Deliverable GUID", Type: TypeString},
	{Key: "deliverable_name", Label: "Deliverable Name", Type: TypeString},
	{Key: "deliverable_start", Label: "Deliverable Start", Type: TypeDate},
	{Key: "deliverable_type", Label: "Deliverable Type", Type: TypeString},
	{Key: "department", Label: "Department", Type: TypeString},
	{Key: "duration", Label: "Duration", Type: TypeDuration},
	{Key: "duration1", Label: "Duration1", Type: TypeDuration},
	{Key: "duration10", Label: "Duration10", Type: TypeDuration},
	{Key: "duration10_estimated", Label: "Duration10 Estimated", Type: TypeBoolean},
	{Key: "duration10_units", Label: "Duration10 Units", Type: TypeString},
	{Key: "duration1_estimated", Label: "Duration1 Estimated", Type: TypeBoolean},
	{Key: "duration1_units", Label: "Duration1 Units", Type: TypeString},
	{Key: "duration2", Label: "Duration2", Type: TypeDuration},
	{Key: "duration2_estimated", Label: "Duration2 Estimated", Type: TypeBoolean},
	{Key: "duration2_units", Label: "Duration2 Units", Type: TypeString},
	{Key: "duration3", Label: "Duration3", Type: TypeDuration},
	{Key: "duration3_estimated", Label: "Duration3 Estimated", Type: TypeBoolean},
	{Key: "duration3_units", Label: "Duration3 Units", Type: TypeString},
	{Key: "duration4", Label: "Duration4", Type: TypeDuration},
	{Key: "duration4_estimated", Label: "Duration4 Estimated", Type: TypeBoolean},
	{Key: "duration4_units", Label: "Duration4 Units", Type: TypeString},
	{Key: "duration5", Label: "Duration5", Type: TypeDuration},
	{Key: "duration5_estimated", Label: "Duration5 Estimated", Type: TypeBoolean},
	{Key: "duration5_units", Label: "Duration5 Units", Type: TypeString},
	{Key: "duration6", Label: "Duration6", Type: TypeDuration},
	{Key: "duration6_estimated", Label: "Duration6 Estimated", Type: TypeBoolean},
	{Key: "duration6_units", Label: "Duration6 Units", Type: TypeString},
	{Key: "duration7", Label: "Duration7", Type: TypeDuration},
	{Key: "duration7_estimated", Label: "Duration7 Estimated", Type: TypeBoolean},
	{Key: "duration7_units", Label: "Duration7 Units", Type: TypeString},
	{Key: "duration8", Label: "Duration8", Type: TypeDuration},
	{Key: "duration8_estimated", Label: "Duration8 Estimated", Type: TypeBoolean},
	{Key: "duration8_units", Label: "Duration8 Units", Type: TypeString},
	{Key: "duration9", Label: "Duration9", Type: TypeDuration},
	{Key: "duration9_estimated", Label: "Duration9 Estimated", Type: TypeBoolean},
	{Key: "duration9_units", Label: "Duration9 Units", Type: TypeString},
	{Key: "duration_text", Label: "Duration", Type: TypeString},
	{Key: "duration_units", Label: "Duration Units", Type: TypeString},
	{Key: "duration_variance", Label: "Duration Variance", Type: TypeDuration},
	{Key: "eac", Label: "EAC", Type: TypeFloat},
	{Key: "early_finish", Label: "Early Finish", Type: TypeDate},
	{Key: "early_start", Label: "Early Start", Type: TypeDate},
	{Key: "earned_value_method", Label: "Earned Value Method", Type: TypeString},
	{Key: "effort_driven", Label: "Effort Driven", Type: TypeBoolean},
	{Key: "enterprise_cost1", Label: "Enterprise Cost1", Type: TypeFloat},
	{Key: "enterprise_cost10", Label: "Enterprise Cost10", Type: TypeFloat},
	{Key: "enterprise_cost2", Label: "Enterprise Cost2", Type: TypeFloat},
	{Key: "enterprise_cost3", Label: "Enterprise Cost3", Type: TypeFloat},
	{Key: "enterprise_cost4", Label: "Enterprise Cost4", Type: TypeFloat},
	{Key: "enterprise_cost5", Label: "Enterprise Cost5", Type: TypeFloat},
	{Key: "enterprise_cost6", Label: "Enterprise Cost6", Type: TypeFloat},
	{Key: "enterprise_cost7", Label: "Enterprise Cost7", Type: TypeFloat},
	{Key: "enterprise_cost8", Label: "Enterprise Cost8", Type: TypeFloat},
	{Key: "enterprise_cost9", Label: "Enterprise Cost9", Type: TypeFloat},
	{Key: "enterprise_custom_field1", Label: "Enterprise Custom Field 1", Type: TypeString},
	{Key: "enterprise_custom_field10", Label: "Enterprise Custom Field 10", Type: TypeString},
	{Key: "enterprise_custom_field100", Label: "Enterprise Custom Field 100", Type: TypeString},
	{Key: "enterprise_custom_field101", Label: "Enterprise Custom Field 101", Type: TypeString},
	{Key: "enterprise_custom_field102", Label: "Enterprise Custom Field 102", Type: TypeString},
	{Key: "enterprise_custom_field103", Label: "Enterprise Custom Field 103", Type: TypeString},
	{Key: "enterprise_custom_field104", Label: "Enterprise Custom Field 104", Type: TypeString},
	{Key: "enterprise_custom_field105", Label: "Enterprise Custom Field 105", Type: TypeString},
	{Key: "enterprise_custom_field106", Label: "Enterprise Custom Field 106", Type: TypeString},
	{Key: "enterprise_custom_field107", Label: "Enterprise Custom Field 107", Type: TypeString},
	{Key: "enterprise_custom_field108", Label: "Enterprise Custom Field 108", Type: TypeString},
	{Key: "enterprise_custom_field109", Label: "Enterprise Custom Field 109", Type: TypeString},
	{Key: "enterprise_custom_field11", Label: "Enterprise Custom Field 11", Type: TypeString},
	{Key: "enterprise_custom_field110", Label: "Enterprise Custom Field 110", Type: TypeString},
	{Key: "enterprise_custom_field111", Label: "Enterprise Custom Field 111", Type: TypeString},
	{Key: "enterprise_custom_field112", Label: "Enterprise Custom Field 112", Type: TypeString},
	{Key: "enterprise_custom_field113", Label: "Enterprise Custom Field 113", Type: TypeString},
	{Key: "enterprise_custom_field114", Label: "Enterprise Custom Field 114", Type: TypeString},
	{Key: "enterprise_custom_field115", Label: "Enterprise Custom Field 115", Type: TypeString},
	{Key: "enterprise_custom_field116", Label: "Enterprise Custom Field 116", Type: TypeString},
	{Key: "enterprise_custom_field117", Label: "Enterprise Custom Field 117", Type: TypeString},
	{Key: "enterprise_custom_field118", Label: "Enterprise Custom Field 118", Type: TypeString},
	{Key: "enterprise_custom_field119", Label: "Enterprise Custom Field 119", Type: TypeString},
	{Key: "enterprise_custom_field12", Label: "Enterprise Custom Field 12", Type: TypeString},
	{Key: "enterprise_custom_field120", Label: "Enterprise Custom Field 120", Type: TypeString},
	{Key: "enterprise_custom_field121", Label: "Enterprise Custom Field 121", Type: TypeString},
	{Key: "enterprise_custom_field122", Label: "Enterprise Custom Field 122", Type: TypeString},
	{Key: "enterprise_custom_field123", Label: "Enterprise Custom Field 123", Type: TypeString},
	{Key: "enterprise_custom_field124", Label: "Enterprise Custom Field 124", Type: TypeString},
	{Key: "enterprise_custom_field125", Label: "Enterprise Custom Field 125", Type: TypeString},
	{Key: "enterprise_custom_field126", Label: "Enterprise Custom Field 126", Type: TypeString},
	{Key: "enterprise_custom_field127", Label: "Enterprise Custom Field 127", Type: TypeString},
	{Key: "enterprise_custom_field128", Label: "Enterprise Custom Field 128", Type: TypeString},
	{Key: "enterprise_custom_field129", Label: "Enterprise Custom Field 129", Type: TypeString},
	{Key: "enterprise_custom_field13", Label: "Enterprise Custom Field 13", Type: TypeString},
	{Key: "enterprise_custom_field130", Label: "Enterprise Custom Field 130", Type: TypeString},
	{Key: "enterprise_custom_field131", Label: "Enterprise Custom Field 131", Type: TypeString},
	{Key: "enterprise_custom_field132", Label: "Enterprise Custom Field 132", Type: TypeString},
	{Key: "enterprise_custom_field133", Label: "Enterprise Custom Field 133", Type: TypeString},
	{Key: "enterprise_custom_field134", Label: "Enterprise Custom Field 134", Type: TypeString},
	{Key: "enterprise_custom_field135", Label: "Enterprise Custom Field 135", Type: TypeString},
	{Key: "enterprise_custom_field136", Label: "Enterprise Custom Field 136", Type: TypeString},
	{Key: "enterprise_custom_field137", Label: "Enterprise Custom Field 137", Type: TypeString},
	{Key: "enterprise_custom_field138", Label: "Enterprise Custom Field 138", Type: TypeString},
	{Key: "enterprise_custom_field139", Label: "Enterprise Custom Field 139", Type: TypeString},
	{Key: "enterprise_custom_field14", Label: "Enterprise Custom Field 14", Type: TypeString},
	{Key: "enterprise_custom_field140", Label: "Enterprise Custom Field 140", Type: TypeString},
	{Key: "enterprise_custom_field141", Label: "Enterprise Custom Field 141", Type: TypeString},
	{Key: "enterprise_custom_field142", Label: "Enterprise Custom Field 142", Type: TypeString},
	{Key: "enterprise_custom_field143", Label: "Enterprise Custom Field 143", Type: TypeString},
	{Key: "enterprise_custom_field144", Label: "Enterprise Custom Field 144", Type: TypeString},
	{Key: "enterprise_custom_field145", Label: "Enterprise Custom Field 145", Type: TypeString},
	{Key: "enterprise_custom_field146", Label: "Enterprise Custom Field 146", Type: TypeString},
	{Key: "enterprise_custom_field147", Label: "Enterprise Custom Field 147", Type: TypeString},
	{Key: "enterprise_custom_field148", Label: "Enterprise Custom Field 148", Type: TypeString},
	{Key: "enterprise_custom_field149", Label: "Enterprise Custom Field 149", Type: TypeString},
	{Key: "enterprise_custom_field15", Label: "Enterprise Custom Field 15", Type: TypeString},
	{Key: "enterprise_custom_field150", Label: "Enterprise Custom Field 150", Type: TypeString},
	{Key: "enterprise_custom_field151", Label: "Enterprise Custom Field 151", Type: TypeString},
	{Key: "enterprise_custom_field152", Label: "Enterprise Custom Field 152", Type: TypeString},
	{Key: "enterprise_custom_field153", Label: "Enterprise Custom Field 153", Type: TypeString},
	{Key: "enterprise_custom_field154", Label: "Enterprise Custom Field 154", Type: TypeString},
	{Key: "enterprise_custom_field155", Label: "Enterprise Custom Field 155", Type: TypeString},
	{Key: "enterprise_custom_field156", Label: "Enterprise Custom Field 156", Type: TypeString},
	{Key: "enterprise_custom_field157", Label: "Enterprise Custom Field 157", Type: TypeString},
	{Key: "enterprise_custom_field158", Label: "Enterprise Custom Field 158", Type: TypeString},
	{Key: "enterprise_custom_field159", Label: "Enterprise Custom Field 159", Type: TypeString},
	{Key: "enterprise_custom_field16", Label: "Enterprise Custom Field 16", Type: TypeString},
	{Key: "enterprise_custom_field160", Label: "Enterprise Custom Field 160", Type: TypeString},
	{Key: "enterprise_custom_field161", Label: "Enterprise Custom Field 161", Type: TypeString},
	{Key: "enterprise_custom_field162", Label: "Enterprise Custom Field 162", Type: TypeString},
	{Key: "enterprise_custom_field163", Label: "Enterprise Custom Field 163", Type: TypeString},
	{Key: "enterprise_custom_field164", Label: "Enterprise Custom Field 164", Type: TypeString},
	{Key: "enterprise_custom_field165", Label: "Enterprise Custom Field 165", Type: TypeString},
	{Key: "enterprise_custom_field166", Label: "Enterprise Custom Field 166", Type: TypeString},
	{Key: "enterprise_custom_field167", Label: "Enterprise Custom Field 167", Type: TypeString},
	{Key: "enterprise_custom_field168", Label: "Enterprise Custom Field 168", Type: TypeString},
	{Key: "enterprise_custom_field169", Label: "Enterprise Custom Field 169", Type: TypeString},
	{Key: "enterprise_custom_field17", Label: "Enterprise Custom Field 17", Type: TypeString},
	{Key: "enterprise_custom_field170", Label: "Enterprise Custom Field 170", Type: TypeString},
	{Key: "enterprise_custom_field171", Label: "Enterprise Custom Field 171", Type: TypeString},
	{Key: "enterprise_custom_field172", Label: "Enterprise Custom Field 172", Type: TypeString},
	{Key: "enterprise_custom_field173", Label: "Enterprise Custom Field 173", Type: TypeString},
	{Key: "enterprise_custom_field174", Label: "Enterprise Custom Field 174", Type: TypeString},
	{Key: "enterprise_custom_field175", Label: "Enterprise Custom Field 175", Type: TypeString},
	{Key: "enterprise_custom_field176", Label: "Enterprise Custom Field 176", Type: TypeString},
	{Key: "enterprise_custom_field177", Label: "Enterprise Custom Field 177", Type: TypeString},
	{Key: "enterprise_custom_field178", Label: "Enterprise Custom Field 178", Type: TypeString},
	{Key: "enterprise_custom_field179", Label: "Enterprise Custom Field 179", Type: TypeString},
	{Key: "enterprise_custom_field18", Label: "Enterprise Custom Field 18", Type: TypeString},
	{Key: "enterprise_custom_field180", Label: "Enterprise Custom Field 180", Type: TypeString},
	{Key: "enterprise_custom_field181", Label: "Enterprise Custom Field 181", Type: TypeString},
	{Key: "enterprise_custom_field182", Label: "Enterprise Custom Field 182", Type: TypeString},
	{Key: "enterprise_custom_field183", Label: "Enterprise Custom Field 183", Type: TypeString},
	{Key: "enterprise_custom_field184", Label: "Enterprise Custom Field 184", Type: TypeString},
	{Key: "enterprise_custom_field185", Label: "Enterprise Custom Field 185", Type: TypeString},
	{Key: "enterprise_custom_field186", Label: "Enterprise Custom Field 186", Type: TypeString},
	{Key: "enterprise_custom_field187", Label: "Enterprise Custom Field 187", Type: TypeString},
	{Key: "enterprise_custom_field188", Label: "Enterprise Custom Field 188", Type: TypeString},
	{Key: "enterprise_custom_field189", Label: "Enterprise Custom Field 189", Type: TypeString},
	{Key: "enterprise_custom_field19", Label: "Enterprise Custom Field 19", Type: TypeString},
	{Key: "enterprise_custom_field190", Label: "Enterprise Custom Field 190", Type: TypeString},
	{Key: "enterprise_custom_field191", Label: "Enterprise Custom Field 191", Type: TypeString},
	{Key: "enterprise_custom_field192", Label: "Enterprise Custom Field 192", Type: TypeString},
	{Key: "enterprise_custom_field193", Label: "Enterprise Custom Field 193", Type: TypeString},
	{Key: "enterprise_custom_field194", Label: "Enterprise Custom Field 194", Type: TypeString},
	{Key: "enterprise_custom_field195", Label: "Enterprise Custom Field 195", Type: TypeString},
	{Key: "enterprise_custom_field196", Label: "Enterprise Custom Field 196", Type: TypeString},
	{Key: "enterprise_custom_field197", Label: "Enterprise Custom Field 197", Type: TypeString},
	{Key: "enterprise_custom_field198", Label: "Enterprise Custom Field 198", Type: TypeString},
	{Key: "enterprise_custom_field199", Label: "Enterprise Custom Field 199", Type: TypeString},
	{Key: "enterprise_custom_field2", Label: "Enterprise Custom Field 2", Type: TypeString},
	{Key: "enterprise_custom_field20", Label: "Enterprise Custom Field 20", Type: TypeString},
	{Key: "enterprise_custom_field200", Label: "Enterprise Custom Field 200", Type: TypeString},
	{Key: "enterprise_custom_field21", Label: "Enterprise Custom Field 21", Type: TypeString},
	{Key: "enterprise_custom_field22", Label: "Enterprise Custom Field 22", Type: TypeString},
	{Key: "enterprise_custom_field23", Label: "Enterprise Custom Field 23", Type: TypeString},
	{Key: "enterprise_custom_field24", Label: "Enterprise Custom Field 24", Type: TypeString},
	{Key: "enterprise_custom_field25", Label: "Enterprise Custom Field 25", Type: TypeString},
	{Key: "enterprise_custom_field26", Label: "Enterprise Custom Field 26", Type: TypeString},
	{Key: "enterprise_custom_field27", Label: "Enterprise Custom Field 27", Type: TypeString},
	{Key: "enterprise_custom_field28", Label: "Enterprise Custom Field 28", Type: TypeString},
	{Key: "enterprise_custom_field29", Label: "Enterprise Custom Field 29", Type: TypeString},
	{Key: "enterprise_custom_field3", Label: "Enterprise Custom Field 3", Type: TypeString},
	{Key: "enterprise_custom_field30", Label: "Enterprise Custom Field 30", Type: TypeString},
	{Key: "enterprise_custom_field31", Label: "Enterprise Custom Field 31", Type: TypeString},
	{Key: "enterprise_custom_field32", Label: "Enterprise Custom Field 32", Type: TypeString},
	{Key: "enterprise_custom_field33", Label: "Enterprise Custom Field 33", Type: TypeString},
	{Key: "enterprise_custom_field34", Label: "Enterprise Custom Field 34", Type: TypeString},
	{Key: "enterprise_custom_field35", Label: "Enterprise Custom Field 35", Type: TypeString},
	{Key: "enterprise_custom_field36", Label: "Enterprise Custom Field 36", Type: TypeString},
	{Key: "enterprise_custom_field37", Label: "Enterprise Custom Field 37", Type: TypeString},
	{Key: "enterprise_custom_field38", Label: "Enterprise Custom Field 38", Type: TypeString},
	{Key: "enterprise_custom_field39", Label: "Enterprise Custom Field 39", Type: TypeString},
	{Key: "enterprise_custom_field4", Label: "Enterprise Custom Field 4", Type: TypeString},
	{Key: "enterprise_custom_field40", Label: "Enterprise Custom Field 40", Type: TypeString},
	{Key: "enterprise_custom_field41", Label: "Enterprise Custom Field 41", Type: TypeString},
	{Key: "enterprise_custom_field42", Label: "Enterprise Custom Field 42", Type: TypeString},
	{Key: "enterprise_custom_field43", Label: "Enterprise Custom Field 43", Type: TypeString},
	{Key: "enterprise_custom_field44", Label: "Enterprise Custom Field 44", Type: TypeString},
	{Key: "enterprise_custom_field45", Label: "Enterprise Custom Field 45", Type: TypeString},
	{Key: "enterprise_custom_field46", Label: "Enterprise Custom Field 46", Type: TypeString},
	{Key: "enterprise_custom_field47", Label: "Enterprise Custom Field 47", Type: TypeString},
	{Key: "enterprise_custom_field48", Label: "Enterprise Custom Field 48", Type: TypeString},
	{Key: "enterprise_custom_field49", Label: "Enterprise Custom Field 49", Type: TypeString},
	{Key: "enterprise_custom_field5", Label: "Enterprise Custom Field 5", Type: TypeString},
	{Key: "enterprise_custom_field50", Label: "Enterprise Custom Field 50", Type: TypeString},
	{Key: "enterprise_custom_field51", Label: "Enterprise Custom Field 51", Type: TypeString},
	{Key: "enterprise_custom_field52", Label: "Enterprise Custom Field 52", Type: TypeString},
	{Key: "enterprise_custom_field53", Label: "Enterprise Custom Field 53", Type: TypeString},
	{Key: "enterprise_custom_field54", Label: "Enterprise Custom Field 54", Type: TypeString},
	{Key: "enterprise_custom_field55", Label: "Enterprise Custom Field 55", Type: TypeString},
	{Key: "enterprise_custom_field56", Label: "Enterprise Custom Field 56", Type: TypeString},
	{Key: "enterprise_custom_field57", Label: "Enterprise Custom Field 57", Type: TypeString},
	{Key: "enterprise_custom_field58", Label: "Enterprise Custom Field 58", Type: TypeString},
	{Key: "enterprise_custom_field59", Label: "Enterprise Custom Field 59", Type: TypeString},
	{Key: "enterprise_custom_field6", Label: "Enterprise Custom Field 6", Type: TypeString},
	{Key: "enterprise_custom_field60", Label: "Enterprise Custom Field 60", Type: TypeString},
	{Key: "enterprise_custom_field61", Label: "Enterprise Custom Field 61", Type: TypeString},
	{Key: "enterprise_custom_field62", Label: "Enterprise Custom Field 62", Type: TypeString},
	{Key: "enterprise_custom_field63", Label: "Enterprise Custom Field 63", Type: TypeString},
	{Key: "enterprise_custom_field64", Label: "Enterprise Custom Field 64", Type: TypeString},
	{Key: "enterprise_custom_field65", Label: "Enterprise Custom Field 65", Type: TypeString},
	{Key: "enterprise_custom_field66", Label: "Enterprise Custom Field 66", Type: TypeString},
	{Key: "enterprise_custom_field67", Label: "Enterprise Custom Field 67", Type: TypeString},
	{Key: "enterprise_custom_field68", Label: "Enterprise Custom Field 68", Type: TypeString},
	{Key: "enterprise_custom_field69", Label: "Enterprise Custom Field 69", Type: TypeString},
	{Key: "enterprise_custom_field7", Label: "Enterprise Custom Field 7", Type: TypeString},
	{Key: "enterprise_custom_field70", Label: "Enterprise Custom Field 70", Type: TypeString},
	{Key: "enterprise_custom_field71", Label: "Enterprise Custom Field 71", Type: TypeString},
	{Key: "enterprise_custom_field72", Label: "Enterprise Custom Field 72", Type: TypeString},
	{Key: "enterprise_custom_field73", Label: "Enterprise Custom Field 73", Type: TypeString},
	{Key: "enterprise_custom_field74", Label: "Enterprise Custom Field 74", Type: TypeString},
	{Key: "enterprise_custom_field75", Label: "Enterprise Custom Field 75", Type: TypeString},
	{Key: "enterprise_custom_field76", Label: "Enterprise Custom Field 76", Type: TypeString},
	{Key: "enterprise_custom_field77", Label: "Enterprise Custom Field 77", Type: TypeString},
	{Key: "enterprise_custom_field78", Label: "Enterprise Custom Field 78", Type: TypeString},
	{Key: "enterprise_custom_field79", Label: "Enterprise Custom Field 79", Type: TypeString},
	{Key: "enterprise_custom_field8", Label: "Enterprise Custom Field 8", Type: TypeString},
	{Key: "enterprise_custom_field80", Label: "Enterprise Custom Field 80", Type: TypeString},
	{Key: "enterprise_custom_field81", Label: "Enterprise Custom Field 81", Type: TypeString},
	{Key: "enterprise_custom_field82", Label: "Enterprise Custom Field 82", Type: TypeString},
	{Key: "enterprise_custom_field83", Label: "Enterprise Custom Field 83", Type: TypeString},
	{Key: "enterprise_custom_field84", Label: "Enterprise Custom Field 84", Type: TypeString},
	{Key: "enterprise_custom_field85", Label: "Enterprise Custom Field 85", Type: TypeString},
	{Key: "enterprise_custom_field86", Label: "Enterprise Custom Field 86", Type: TypeString},
	{Key: "enterprise_custom_field87", Label: "Enterprise Custom Field 87", Type: TypeString},
	{Key: "enterprise_custom_field88", Label: "Enterprise Custom Field 88", Type: TypeString},
	{Key: "enterprise_custom_field89", Label: "Enterprise Custom Field 89", Type: TypeString},
	{Key: "enterprise_custom_field9", Label: "Enterprise Custom Field 9", Type: TypeString},
	{Key: "enterprise_custom_field90", Label: "Enterprise Custom Field 90", Type: TypeString},
	{Key: "enterprise_custom_field91", Label: "Enterprise Custom Field 91", Type: TypeString},
	{Key: "enterprise_custom_field92", Label: "Enterprise Custom Field 92", Type: TypeString},
	{Key: "enterprise_custom_field93", Label: "Enterprise Custom Field 93", Type: TypeString},
	{Key: "enterprise_custom_field94", Label: "Enterprise Custom Field 94", Type: TypeString},
	{Key: "enterprise_custom_field95", Label: "Enterprise Custom Field 95", Type: TypeString},
	{Key: "enterprise_custom_field96", Label: "Enterprise Custom Field 96", Type: TypeString},
	{Key: "enterprise_custom_field97", Label: "Enterprise Custom Field 97", Type: TypeString},
	{Key: "enterprise_custom_field98", Label: "Enterprise Custom Field 98", Type: TypeString},
	{Key: "enterprise_custom_field99", Label: "Enterprise Custom Field 99", Type: TypeString},
	{Key: "enterprise_data", Label: "Enterprise Data", Type: TypeString},
	{Key: "enterprise_date1", Label: "Enterprise Date1", Type: TypeDate},
	{Key: "enterprise_date10", Label: "Enterprise Date10", Type: TypeDate},
	{Key: "enterprise_date11", Label: "Enterprise Date11", Type: TypeDate},
	{Key: "enterprise_date12", Label: "Enterprise Date12", Type: TypeDate},
	{Key: "enterprise_date13", Label: "Enterprise Date13", Type: TypeDate},
	{Key: "enterprise_date14", Label: "Enterprise Date14", Type: TypeDate},
	{Key: "enterprise_date15", Label: "Enterprise Date15", Type: TypeDate},
	{Key: "enterprise_date16", Label: "Enterprise Date16", Type: TypeDate},
	{Key: "enterprise_date17", Label: "Enterprise Date17", Type: TypeDate},
	{Key: "enterprise_date18", Label: "Enterprise Date18", Type: TypeDate},
	{Key: "enterprise_date19", Label: "Enterprise Date19", Type: TypeDate},
	{Key: "enterprise_date2", Label: "Enterprise Date2", Type: TypeDate},
	{Key: "enterprise_date20", Label: "Enterprise Date20", Type: TypeDate},
	{Key: "enterprise_date21", Label: "Enterprise Date21", Type: TypeDate},
	{Key: "enterprise_date22", Label: "Enterprise Date22", Type: TypeDate},
	{Key: "enterprise_date23", Label: "Enterprise Date23", Type: TypeDate},
	{Key: "enterprise_date24", Label: "Enterprise Date24", Type: TypeDate},
	{Key: "enterprise_date25", Label: "Enterprise Date25", Type: TypeDate},
	{Key: "enterprise_date26", Label: "Enterprise Date26", Type: TypeDate},
	{Key: "enterprise_date27", Label: "Enterprise Date27", Type: TypeDate},
	{Key: "enterprise_date28", Label: "Enterprise Date28", Type: TypeDate},
	{Key: "enterprise_date29", Label: "Enterprise Date29", Type: TypeDate},
	{Key: "enterprise_date3", Label: "Enterprise Date3", Type: TypeDate},
	{Key: "enterprise_date30", Label: "Enterprise Date30", Type: TypeDate},
	{Key: "enterprise_date4", Label: "Enterprise Date4", Type: TypeDate},
	{Key: "enterprise_date5", Label: "Enterprise Date5", Type: TypeDate},
	{Key: "enterprise_date6", Label: "Enterprise Date6", Type: TypeDate},
	{Key: "enterprise_date7", Label: "Enterprise Date7", Type: TypeDate},
	{Key: "enterprise_date8", Label: "Enterprise Date8", Type: TypeDate},
	{Key: "enterprise_date9", Label: "Enterprise Date9", Type: TypeDate},
	{Key: "enterprise_duration1", Label: "Enterprise Duration1", Type: TypeDuration},
	{Key: "enterprise_duration10", Label: "Enterprise Duration10", Type: TypeDuration},
	{Key: "enterprise_duration10_units", Label: "Enterprise Duration10 Units", Type: TypeString},
	{Key: "enterprise_duration1_units", Label: "Enterprise Duration1 Units", Type: TypeString},
	{Key: "enterprise_duration2", Label: "Enterprise Duration2", Type: TypeDuration},
	{Key: "enterprise_duration2_units", Label: "Enterprise Duration2 Units", Type: TypeString},
	{Key: "enterprise_duration3", Label: "Enterprise Duration3", Type: TypeDuration},
	{Key: "enterprise_duration3_units", Label: "Enterprise Duration3 Units", Type: TypeString},
	{Key: "enterprise_duration4", Label: "Enterprise Duration4", Type: TypeDuration},
	{Key: "enterprise_duration4_units", Label: "Enterprise Duration4 Units", Type: TypeString},
	{Key: "enterprise_duration5", Label: "Enterprise Duration5", Type: TypeDuration},
	{Key: "enterprise_duration5_units", Label: "Enterprise Duration5 Units", Type: TypeString},
	{Key: "enterprise_duration6", Label: "Enterprise Duration6", Type: TypeDuration},
	{Key: "enterprise_duration6_units", Label: "Enterprise Duration6 Units", Type: TypeString},
	{Key: "enterprise_duration7", Label: "Enterprise Duration7", Type: TypeDuration},
	{Key: "enterprise_duration7_units", Label: "Enterprise Duration7 Units", Type: TypeString},
	{Key: "enterprise_duration8", Label: "Enterprise Duration8", Type: TypeDuration},
	{Key: "enterprise_duration8_units", Label: "Enterprise Duration8 Units", Type: TypeString},
	{Key: "enterprise_duration9", Label: "Enterprise Duration9", Type: TypeDuration},
	{Key: "enterprise_duration9_units", Label: "Enterprise Duration9 Units", Type: TypeString},
	{Key: "enterprise_flag1", Label: "Enterprise Flag1", Type: TypeBoolean},
	{Key: "enterprise_flag10", Label: "Enterprise Flag10", Type: TypeBoolean},
	{Key: "enterprise_flag11", Label: "Enterprise Flag11", Type: TypeBoolean},
	{Key: "enterprise_flag12", Label: "Enterprise Flag12", Type: TypeBoolean},
	{Key: "enterprise_flag13", Label: "Enterprise Flag13", Type: TypeBoolean},
	{Key: "enterprise_flag14", Label: "Enterprise Flag14", Type: TypeBoolean},
	{Key: "enterprise_flag15", Label: "Enterprise Flag15", Type: TypeBoolean},
	{Key: "enterprise_flag16", Label: "Enterprise Flag16", Type: TypeBoolean},
	{Key: "enterprise_flag17", Label: "Enterprise Flag17", Type: TypeBoolean},
	{Key: "enterprise_flag18", Label: "Enterprise Flag18", Type: TypeBoolean},
	{Key: "enterprise_flag19", Label: "Enterprise Flag19", Type: TypeBoolean},
	{Key: "enterprise_flag2", Label: "Enterprise Flag2", Type: TypeBoolean},
	{Key: "enterprise_flag20", Label: "Enterprise Flag20", Type: TypeBoolean},
	{Key: "enterprise_flag3", Label: "Enterprise Flag3", Type: TypeBoolean},
	{Key: "enterprise_flag4", Label: "Enterprise Flag4", Type: TypeBoolean},
	{Key: "enterprise_flag5", Label: "Enterprise Flag5", Type: TypeBoolean},
	{Key: "enterprise_flag6", Label: "Enterprise Flag6", Type: TypeBoolean},
	{Key: "enterprise_flag7", Label: "Enterprise Flag7", Type: TypeBoolean},
	{Key: "enterprise_flag8", Label: "Enterprise Flag8", Type: TypeBoolean},
	{Key: "enterprise_flag9", Label: "Enterprise Flag9", Type: TypeBoolean},
	{Key: "enterprise_number1", Label: "Enterprise Number1", Type: TypeFloat},
	{Key: "enterprise_number10", Label: "Enterprise Number10", Type: TypeFloat},
	{Key: "enterprise_number11", Label: "Enterprise Number11", Type: TypeFloat},
	{Key: "enterprise_number12", Label: "Enterprise Number12", Type: TypeFloat},
	{Key: "enterprise_number13", Label: "Enterprise Number13", Type: TypeFloat},
	{Key: "enterprise_number14", Label: "Enterprise Number14", Type: TypeFloat},
	{Key: "enterprise_number15", Label: "Enterprise Number15", Type: TypeFloat},
	{Key: "enterprise_number16", Label: "Enterprise Number16", Type: TypeFloat},
	{Key: "enterprise_number17", Label: "Enterprise Number17", Type: TypeFloat},
	{Key: "enterprise_number18", Label: "Enterprise Number18", Type: TypeFloat},
	{Key: "enterprise_number19", Label: "Enterprise Number19", Type: TypeFloat},
	{Key: "enterprise_number2", Label: "Enterprise Number2", Type: TypeFloat},
	{Key: "enterprise_number20", Label: "Enterprise Number20", Type: TypeFloat},
	{Key: "enterprise_number21", Label: "Enterprise Number21", Type: TypeFloat},
	{Key: "enterprise_number22", Label: "Enterprise Number22", Type: TypeFloat},
	{Key: "enterprise_number23", Label: "Enterprise Number23", Type: TypeFloat},
	{Key: "enterprise_number24", Label: "Enterprise Number24", Type: TypeFloat},
	{Key: "enterprise_number25", Label: "Enterprise Number25", Type: TypeFloat},
	{Key: "enterprise_number26", Label: "Enterprise Number26", Type: TypeFloat},
	{Key: "enterprise_number27", Label: "Enterprise Number27", Type: TypeFloat},
	{Key: "enterprise_number28", Label: "Enterprise Number28", Type: TypeFloat},
	{Key: "enterprise_number29", Label: "Enterprise Number29", Type: TypeFloat},
	{Key: "enterprise_number3", Label: "Enterprise Number3", Type: TypeFloat},
	{Key: "enterprise_number30", Label: "Enterprise Number30", Type: TypeFloat},
	{Key: "enterprise_number31", Label: "Enterprise Number31", Type: TypeFloat},
	{Key: "enterprise_number32", Label: "Enterprise Number32", Type: TypeFloat},
	{Key: "enterprise_number33", Label: "Enterprise Number33", Type: TypeFloat},
	{Key: "enterprise_number34", Label: "Enterprise Number34", Type: TypeFloat},
	{Key: "enterprise_number35", Label: "Enterprise Number35", Type: TypeFloat},
	{Key: "enterprise_number36", Label: "Enterprise Number36", Type: TypeFloat},
	{Key: "enterprise_number37", Label: "Enterprise Number37", Type: TypeFloat},
	{Key: "enterprise_number38", Label: "Enterprise Number38", Type: TypeFloat},
	{Key: "enterprise_number39", Label: "Enterprise Number39", Type: TypeFloat},
	{Key: "enterprise_number4", Label: "Enterprise Number4", Type: TypeFloat},
	{Key: "enterprise_number40", Label: "Enterprise Number40", Type: TypeFloat},
	{Key: "enterprise_number5", Label: "Enterprise Number5", Type: TypeFloat},
	{Key: "enterprise_number6", Label: "Enterprise Number6", Type: TypeFloat},
	{Key: "enterprise_number7", Label: "Enterprise Number7", Type: TypeFloat},
	{Key: "enterprise_number8", Label: "Enterprise Number8", Type: TypeFloat},
	{Key: "enterprise_number9", Label: "Enterprise Number9", Type: TypeFloat},
	{Key: "enterprise_outline_code1", Label: "Enterprise Outline Code1", Type: TypeString},
	{Key: "enterprise_outline_code10", Label: "Enterprise Outline Code10", Type: TypeString},
	{Key: "enterprise_outline_code11", Label: "Enterprise Outline Code11", Type: TypeString},
	{Key: "enterprise_outline_code12", Label: "Enterprise Outline Code12", Type: TypeString},
	{Key: "enterprise_outline_code13", Label: "Enterprise Outline Code13", Type: TypeString},
	{Key: "enterprise_outline_code14", Label: "Enterprise Outline Code14", Type: TypeString},
	{Key: "enterprise_outline_code15", Label: "Enterprise Outline Code15", Type: TypeString},
	{Key: "enterprise_outline_code16", Label: "Enterprise Outline Code16", Type: TypeString},
	{Key: "enterprise_outline_code17", Label: "Enterprise Outline Code17", Type: TypeString},
	{Key: "enterprise_outline_code18", Label: "Enterprise Outline Code18", Type: TypeString},
	{Key: "enterprise_outline_code19", Label: "Enterprise Outline Code19", Type: TypeString},
	{Key: "enterprise_outline_code2", Label: "Enterprise Outline Code2", Type: TypeString},
	{Key: "enterprise_outline_code20", Label: "Enterprise Outline Code20", Type: TypeString},
	{Key: "enterprise_outline_code21", Label: "Enterprise Outline Code21", Type: TypeString},
	{Key: "enterprise_outline_code22", Label: "Enterprise Outline Code22", Type: TypeString},
	{Key: "enterprise_outline_code23", Label: "Enterprise Outline Code23", Type: TypeString},
	{Key: "enterprise_outline_code24", Label: "Enterprise Outline Code24", Type: TypeString},
	{Key: "enterprise_outline_code25", Label: "Enterprise Outline Code25", Type: TypeString},
	{Key: "enterprise_outline_code26", Label: "Enterprise Outline Code26", Type: TypeString},
	{Key: "enterprise_outline_code27", Label: "Enterprise Outline Code27", Type: TypeString},
	{Key: "enterprise_outline_code28", Label: "Enterprise Outline Code28", Type: TypeString},
	{Key: "enterprise_outline_code29", Label: "Enterprise Outline Code29", Type: TypeString},
	{Key: "enterprise_outline_code3", Label: "Enterprise Outline Code3", Type: TypeString},
	{Key: "enterprise_outline_code30", Label: "Enterprise Outline Code30", Type: TypeString},
	{Key: "enterprise_outline_code4", Label: "Enterprise Outline Code4", Type: TypeString},
	{Key: "enterprise_outline_code5", Label: "Enterprise Outline Code5", Type: TypeString},
	{Key: "enterprise_outline_code6", Label: "Enterprise Outline Code6", Type: TypeString},
	{Key: "enterprise_outline_code7", Label: "Enterprise Outline Code7", Type: TypeString},
	{Key: "enterprise_outline_code8", Label: "Enterprise Outline Code8", Type: TypeString},
	{Key: "enterprise_outline_code9", Label: "Enterprise Outline Code9", Type: TypeString},
	{Key: "enterprise_project_cost1", Label: "Enterprise Project Cost1", Type: TypeFloat},
	{Key: "enterprise_project_cost10", Label: "Enterprise Project Cost10", Type: TypeFloat},
	{Key: "enterprise_project_cost2", Label: "Enterprise Project Cost2", Type: TypeFloat},
	{Key: "enterprise_project_cost3", Label: "Enterprise Project Cost3", Type: TypeFloat},
	{Key: "enterprise_project_cost4", Label: "Enterprise Project Cost4", Type: TypeFloat},
	{Key: "enterprise_project_cost5", Label: "Enterprise Project Cost5", Type: TypeFloat},
	{Key: "enterprise_project_cost6", Label: "Enterprise Project Cost6", Type: TypeFloat},
	{Key: "enterprise_project_cost7", Label: "Enterprise Project Cost7", Type: TypeFloat},
	{Key: "enterprise_project_cost8", Label: "Enterprise Project Cost8", Type: TypeFloat},
	{Key: "enterprise_project_cost9", Label: "Enterprise Project Cost9", Type: TypeFloat},
	{Key: "enterprise_project_date1", Label: "Enterprise Project Date1", Type: TypeDate},
	{Key: "enterprise_project_date10", Label: "Enterprise Project Date10", Type: TypeDate},
	{Key: "enterprise_project_date11", Label: "Enterprise Project Date11", Type: TypeDate},
	{Key: "enterprise_project_date12", Label: "Enterprise Project Date12", Type: TypeDate},
	{Key: "enterprise_project_date13", Label: "Enterprise Project Date13", Type: TypeDate},
	{Key: "enterprise_project_date14", Label: "Enterprise Project Date14", Type: TypeDate},
	{Key: "enterprise_project_date15", Label: "Enterprise Project Date15", Type: TypeDate},
	{Key: "enterprise_project_date16", Label: "Enterprise Project Date16", Type: TypeDate},
	{Key: "enterprise_project_date17", Label: "Enterprise Project Date17", Type: TypeDate},
	{Key: "enterprise_project_date18", Label: "Enterprise Project Date18", Type: TypeDate},
	{Key: "enterprise_project_date19", Label: "Enterprise Project Date19", Type: TypeDate},
	{Key: "enterprise_project_date2", Label: "Enterprise Project Date2", Type: TypeDate},
	{Key: "enterprise_project_date20", Label: "Enterprise Project Date20", Type: TypeDate},
	{Key: "enterprise_project_date21", Label: "Enterprise Project Date21", Type: TypeDate},
	{Key: "enterprise_project_date22", Label: "Enterprise Project Date22", Type: TypeDate},
	{Key: "enterprise_project_date23", Label: "Enterprise Project Date23", Type: TypeDate},
	{Key: "enterprise_project_date24", Label: "Enterprise Project Date24", Type: TypeDate},
	{Key: "enterprise_project_date25", Label: "Enterprise Project Date25", Type: TypeDate},
	{Key: "enterprise_project_date26", Label: "Enterprise Project Date26", Type: TypeDate},
	{Key: "enterprise_project_date27", Label: "Enterprise Project Date27", Type: TypeDate},
	{Key: "enterprise_project_date28", Label: "Enterprise Project Date28", Type: TypeDate},
	{Key: "enterprise_project_date29", Label: "Enterprise Project Date29", Type: TypeDate},
	{Key: "enterprise_project_date3", Label: "Enterprise Project Date3", Type: TypeDate},
	{Key: "enterprise_project_date30", Label: "Enterprise Project Date30", Type: TypeDate},
	{Key: "enterprise_project_date4", Label: "Enterprise Project Date4", Type: TypeDate},
	{Key: "enterprise_project_date5", Label: "Enterprise Project Date5", Type: TypeDate},
	{Key: "enterprise_project_date6", Label: "Enterprise Project Date6", Type: TypeDate},
	{Key: "enterprise_project_date7", Label: "Enterprise Project Date7", Type: TypeDate},
	{Key: "enterprise_project_date8", Label: "Enterprise Project Date8", Type: TypeDate},
	{Key: "enterprise_project_date9", Label: "Enterprise Project Date9", Type: TypeDate},
	{Key: "enterprise_project_duration1", Label: "Enterprise Project Duration1", Type: TypeDuration},
	{Key: "enterprise_project_duration10", Label: "Enterprise Project Duration10", Type: TypeDuration},
	{Key: "enterprise_project_duration2", Label: "Enterprise Project Duration2", Type: TypeDuration},
	{Key: "enterprise_project_duration3", Label: "Enterprise Project Duration3", Type: TypeDuration},
	{Key: "enterprise_project_duration4", Label: "Enterprise Project Duration4", Type: TypeDuration},
	{Key: "enterprise_project_duration5", Label: "Enterprise Project Duration5", Type: TypeDuration},
	{Key: "enterprise_project_duration6", Label: "Enterprise Project Duration6", Type: TypeDuration},
	{Key: "enterprise_project_duration7", Label: "Enterprise Project Duration7", Type: TypeDuration},
	{Key: "enterprise_project_duration8", Label: "Enterprise Project Duration8", Type: TypeDuration},
	{Key: "enterprise_project_duration9", Label: "Enterprise Project Duration9", Type: TypeDuration},
	{Key: "enterprise_project_flag1", Label: "Enterprise Project Flag1", Type: TypeBoolean},
	{Key: "enterprise_project_flag10", Label: "Enterprise Project Flag10", Type: TypeBoolean},
	{Key: "enterprise_project_flag11", Label: "Enterprise Project Flag11", Type: TypeBoolean},
	{Key: "enterprise_project_flag12", Label: "Enterprise Project Flag12", Type: TypeBoolean},
	{Key: "enterprise_project_flag13", Label: "Enterprise Project Flag13", Type: TypeBoolean},
	{Key: "enterprise_project_flag14", Label: "Enterprise Project Flag14", Type: TypeBoolean},
	{Key: "enterprise_project_flag15", Label: "Enterprise Project Flag15", Type: TypeBoolean},
	{Key: "enterprise_project_flag16", Label: "Enterprise Project Flag16", Type: TypeBoolean},
	{Key: "enterprise_project_flag17", Label: "Enterprise Project Flag17", Type: TypeBoolean},
	{Key: "enterprise_project_flag18", Label: "Enterprise Project Flag18", Type: TypeBoolean},
	{Key: "enterprise_project_flag19", Label: "Enterprise Project Flag19", Type: TypeBoolean},
	{Key: "enterprise_project_flag2", Label: "Enterprise Project Flag2", Type: TypeBoolean},
	{Key: "enterprise_project_flag20", Label: "Enterprise Project Flag20", Type: TypeBoolean},
	{Key: "enterprise_project_flag3", Label: "Enterprise Project Flag3", Type: TypeBoolean},
	{Key: "enterprise_project_flag4", Label: "Enterprise Project Flag4", Type: TypeBoolean},
	{Key: "enterprise_project_flag5", Label: "Enterprise Project Flag5", Type: TypeBoolean},
	{Key: "enterprise_project_flag6", Label: "Enterprise Project Flag6", Type: TypeBoolean},
	{Key: "enterprise_project_flag7", Label: "Enterprise Project Flag7", Type: TypeBoolean},
	{Key: "enterprise_project_flag8", Label: "Enterprise Project Flag8", Type: TypeBoolean},
	{Key: "enterprise_project_flag9", Label: "Enterprise Project Flag9", Type: TypeBoolean},
	{Key: "enterprise_project_number1", Label: "Enterprise Project Number1", Type: TypeFloat},
	{Key: "enterprise_project_number10", Label: "Enterprise Project Number10", Type: TypeFloat},
	{Key: "enterprise_project_number11", Label: "Enterprise Project Number11", Type: TypeFloat},
	{Key: "enterprise_project_number12", Label: "Enterprise Project Number12", Type: TypeFloat},
	{Key: "enterprise_project_number13", Label: "Enterprise Project Number13", Type: TypeFloat},
	{Key: "enterprise_project_number14", Label: "Enterprise Project Number14", Type: TypeFloat},
	{Key: "enterprise_project_number15", Label: "Enterprise Project Number15", Type: TypeFloat},
	{Key: "enterprise_project_number16", Label: "Enterprise Project Number16", Type: TypeFloat},
	{Key: "enterprise_project_number17", Label: "Enterprise Project Number17", Type: TypeFloat},
	{Key: "enterprise_project_number18", Label: "Enterprise Project Number18", Type: TypeFloat},
	{Key: "enterprise_project_number19", Label: "Enterprise Project Number19", Type: TypeFloat},
	{Key: "enterprise_project_number2", Label: "Enterprise Project Number2", Type: TypeFloat},
	{Key: "enterprise_project_number20", Label: "Enterprise Project Number20", Type: TypeFloat},
	{Key: "enterprise_project_number21", Label: "Enterprise Project Number21", Type: TypeFloat},
	{Key: "enterprise_project_number22", Label: "Enterprise Project Number22", Type: TypeFloat},
	{Key: "enterprise_project_number23", Label: "Enterprise Project Number23", Type: TypeFloat},
	{Key: "enterprise_project_number24", Label: "Enterprise Project Number24", Type: TypeFloat},
	{Key: "enterprise_project_number25", Label: "Enterprise Project Number25", Type: TypeFloat},
	{Key: "enterprise_project_number26", Label: "Enterprise Project Number26", Type: TypeFloat},
	{Key: "enterprise_project_number27", Label: "Enterprise Project Number27", Type: TypeFloat},
	{Key: "enterprise_project_number28", Label: "Enterprise Project Number28", Type: TypeFloat},
	{Key: "enterprise_project_number29", Label: "Enterprise Project Number29", Type: TypeFloat},
	{Key: "enterprise_project_number3", Label: "Enterprise Project Number3", Type: TypeFloat},
	{Key: "enterprise_project_number30", Label: "Enterprise Project Number30", Type: TypeFloat},
	{Key: "enterprise_project_number31", Label: "Enterprise Project Number31", Type: TypeFloat},
	{Key: "enterprise_project_number32", Label: "Enterprise Project Number32", Type: TypeFloat},
	{Key: "enterprise_project_number33", Label: "Enterprise Project Number33", Type: TypeFloat},
	{Key: "enterprise_project_number34", Label: "Enterprise Project Number34", Type: TypeFloat},
	{Key: "enterprise_project_number35", Label: "Enterprise Project Number35", Type: TypeFloat},
	{Key: "enterprise_project_number36", Label: "Enterprise Project Number36", Type: TypeFloat},
	{Key: "enterprise_project_number37", Label: "Enterprise Project Number37", Type: TypeFloat},
	{Key: "enterprise_project_number38", Label: "Enterprise Project Number38", Type: TypeFloat},
	{Key: "enterprise_project_number39", Label: "Enterprise Project Number39", Type: TypeFloat},
	{Key: "enterprise_project_number4", Label: "Enterprise Project Number4", Type: TypeFloat},
	{Key: "enterprise_project_number40", Label: "Enterprise Project Number40", Type: TypeFloat},
	{Key: "enterprise_project_number5", Label: "Enterprise Project Number5", Type: TypeFloat},
	{Key: "enterprise_project_number6", Label: "Enterprise Project Number6", Type: TypeFloat},
	{Key: "enterprise_project_number7", Label: "Enterprise Project Number7", Type: TypeFloat},
	{Key: "enterprise_project_number8", Label: "Enterprise Project Number8", Type: TypeFloat},
	{Key: "enterprise_project_number9", Label: "Enterprise Project Number9", Type: TypeFloat},
	{Key: "enterprise_project_outline_code1", Label: "Enterprise Project Outline Code1", Type: TypeString},
	{Key: "enterprise_project_outline_code10", Label: "Enterprise Project Outline Code10", Type: TypeString},
	{Key: "enterprise_project_outline_code11", Label: "Enterprise Project Outline Code11", Type: TypeString},
	{Key: "enterprise_project_outline_code12", Label: "Enterprise Project Outline Code12", Type: TypeString},
	{Key: "enterprise_project_outline_code13", Label: "Enterprise Project Outline Code13", Type: TypeString},
	{Key: "enterprise_project_outline_code14", Label: "Enterprise Project Outline Code14", Type: TypeString},
	{Key: "enterprise_project_outline_code15", Label: "Enterprise Project Outline Code15", Type: TypeString},
	{Key: "enterprise_project_outline_code16", Label: "Enterprise Project Outline Code16", Type: TypeString},
	{Key: "enterprise_project_outline_code17", Label: "Enterprise Project Outline Code17", Type: TypeString},
	{Key: "enterprise_project_outline_code18", Label: "Enterprise Project Outline Code18", Type: TypeString},
	{Key: "enterprise_project_outline_code19", Label: "Enterprise Project Outline Code19", Type: TypeString},
	{Key: "enterprise_project_outline_code2", Label: "Enterprise Project Outline Code2", Type: TypeString},
	{Key: "enterprise_project_outline_code20", Label: "Enterprise Project Outline Code20", Type: TypeString},
	{Key: "enterprise_project_outline_code21", Label: "Enterprise Project Outline Code21", Type: TypeString},
	{Key: "enterprise_project_outline_code22", Label: "Enterprise Project Outline Code22", Type: TypeString},
	{Key: "enterprise_project_outline_code23", Label: "Enterprise Project Outline Code23", Type: TypeString},
	{Key: "enterprise_project_outline_code24", Label: "Enterprise Project Outline Code24", Type: TypeString},
	{Key: "enterprise_project_outline_code25", Label: "Enterprise Project Outline Code25", Type: TypeString},
	{Key: "enterprise_project_outline_code26", Label: "Enterprise Project Outline Code26", Type: TypeString},
	{Key: "enterprise_project_outline_code27", Label: "Enterprise Project Outline Code27", Type: TypeString},
	{Key: "enterprise_project_outline_code28", Label: "Enterprise Project Outline Code28", Type: TypeString},
	{Key: "enterprise_project_outline_code29", Label: "Enterprise Project Outline Code29", Type: TypeString},
	{Key: "enterprise_project_outline_code3", Label: "Enterprise Project Outline Code3", Type: TypeString},
	{Key: "enterprise_project_outline_code30", Label: "Enterprise Project Outline Code30", Type: TypeString},
	{Key: "enterprise_project_outline_code4", Label: "Enterprise Project Outline Code4", Type: TypeString},
	{Key: "enterprise_project_outline_code5", Label: "Enterprise Project Outline Code5", Type: TypeString},
	{Key: "enterprise_project_outline_code6", Label: "Enterprise Project Outline Code6", Type: TypeString},
	{Key: "enterprise_project_outline_code7", Label: "Enterprise Project Outline Code7", Type: TypeString},
	{Key: "enterprise_project_outline_code8", Label: "Enterprise Project Outline Code8", Type: TypeString},
	{Key: "enterprise_project_outline_code9", Label: "Enterprise Project Outline Code9", Type: TypeString},
	{Key: "enterprise_project_text1", Label: "Enterprise Project Text1", Type: TypeString},
	{Key: "enterprise_project_text10", Label: "Enterprise Project Text10", Type: TypeString},
	{Key: "enterprise_project_text11", Label: "Enterprise Project Text11", Type: TypeString},
	{Key: "enterprise_project_text12", Label: "Enterprise Project Text12", Type: TypeString},
	{Key: "enterprise_project_text13", Label: "Enterprise Project Text13", Type: TypeString},
	{Key: "enterprise_project_text14", Label: "Enterprise Project Text14", Type: TypeString},
	{Key: "enterprise_project_text15", Label: "Enterprise Project Text15", Type: TypeString},
	{Key: "enterprise_project_text16", Label: "Enterprise Project Text16", Type: TypeString},
	{Key: "enterprise_project_text17", Label: "Enterprise Project Text17", Type: TypeString},
	{Key: "enterprise_project_text18", Label: "Enterprise Project Text18", Type: TypeString},
	{Key: "enterprise_project_text19", Label: "Enterprise Project Text19", Type: TypeString},
	{Key: "enterprise_project_text2", Label: "Enterprise Project Text2", Type: TypeString},
	{Key: "enterprise_project_text20", Label: "Enterprise Project Text20", Type: TypeString},
	{Key: "enterprise_project_text21", Label: "Enterprise Project Text21", Type: TypeString},
	{Key: "enterprise_project_text22", Label: "Enterprise Project Text22", Type: TypeString},
	{Key: "enterprise_project_text23", Label: "Enterprise Project Text23", Type: TypeString},
	{Key: "enterprise_project_text24", Label: "Enterprise Project Text24", Type: TypeString},
	{Key: "enterprise_project_text25", Label: "Enterprise Project Text25", Type: TypeString},
	{Key: "enterprise_project_text26", Label: "Enterprise Project Text26", Type: TypeString},
	{Key: "enterprise_project_text27", Label: "Enterprise Project Text27", Type: TypeString},
	{Key: "enterprise_project_text28", Label: "Enterprise Project Text28", Type: TypeString},
	{Key: "enterprise_project_text29", Label: "Enterprise Project Text29", Type: TypeString},
	{Key: "enterprise_project_text3", Label: "Enterprise Project Text3", Type: TypeString},
	{Key: "enterprise_project_text30", Label: "Enterprise Project Text30", Type: TypeString},
	{Key: "enterprise_project_text31", Label: "Enterprise Project Text31", Type: TypeString},
	{Key: "enterprise_project_text32", Label: "Enterprise Project Text32", Type: TypeString},
	{Key: "enterprise_project_text33", Label: "Enterprise Project Text33", Type: TypeString},
	{Key: "enterprise_project_text34", Label: "Enterprise Project Text34", Type: TypeString},
	{Key: "enterprise_project_text35", Label: "Enterprise Project Text35", Type: TypeString},
	{Key: "enterprise_project_text36", Label: "Enterprise Project Text36", Type: TypeString},
	{Key: "enterprise_project_text37", Label: "Enterprise Project Text37", Type: TypeString},
	{Key: "enterprise_project_text38", Label: "Enterprise Project Text38", Type: TypeString},
	{Key: "enterprise_project_text39", Label: "Enterprise Project Text39", Type: TypeString},
	{Key: "enterprise_project_text4", Label: "Enterprise Project Text4", Type: TypeString},
	{Key: "enterprise_project_text40", Label: "Enterprise Project Text40", Type: TypeString},
	{Key: "enterprise_project_text5", Label: "Enterprise Project Text5", Type: TypeString},
	{Key: "enterprise_project_text6", Label: "Enterprise Project Text6", Type: TypeString},
	{Key: "enterprise_project_text7", Label: "Enterprise Project Text7", Type: TypeString},
	{Key: "enterprise_project_text8", Label: "Enterprise Project Text8", Type: TypeString},
	{Key: "enterprise_project_text9", Label: "Enterprise Project Text9", Type: TypeString},
	{Key: "enterprise_text1", Label: "Enterprise Text1", Type: TypeString},
	{Key: "enterprise_text10", Label: "Enterprise Text10", Type: TypeString},
	{Key: "enterprise_text11", Label: "Enterprise Text11", Type: TypeString},
	{Key: "enterprise_text12", Label: "Enterprise Text12", Type: TypeString},
	{Key: "enterprise_text13", Label: "Enterprise Text13", Type: TypeString},
	{Key: "enterprise_text14", Label: "Enterprise Text14", Type: TypeString},
	{Key: "enterprise_text15", Label: "Enterprise Text15", Type: TypeString},
	{Key: "enterprise_text16", Label: "Enterprise Text16", Type: TypeString},
	{Key: "enterprise_text17", Label: "Enterprise Text17", Type: TypeString},
	{Key: "enterprise_text18", Label: "Enterprise Text18", Type: TypeString},
	{Key: "enterprise_text19", Label: "Enterprise Text19", Type: TypeString},
	{Key: "enterprise_text2", Label: "Enterprise Text2", Type: TypeString},
	{Key: "enterprise_text20", Label: "Enterprise Text20", Type: TypeString},
	{Key: "enterprise_text21", Label: "Enterprise Text21", Type: TypeString},
	{Key: "enterprise_text22", Label: "Enterprise Text22", Type: TypeString},
	{Key: "enterprise_text23", Label: "Enterprise Text23", Type: TypeString},
	{Key: "enterprise_text24", Label: "Enterprise Text24", Type: TypeString},
	{Key: "enterprise_text25", Label: "Enterprise Text25", Type: TypeString},
	{Key: "enterprise_text26", Label: "Enterprise Text26", Type: TypeString},
	{Key: "enterprise_text27", Label: "Enterprise Text27", Type: TypeString},
	{Key: "enterprise_text28", Label: "Enterprise Text28", Type: TypeString},
	{Key: "enterprise_text29", Label: "Enterprise Text29", Type: TypeString},
	{Key: "enterprise_text3", Label: "Enterprise Text3", Type: TypeString},
	{Key: "enterprise_text30", Label: "Enterprise Text30", Type: TypeString},
	{Key: "enterprise_text31", Label: "Enterprise Text31", Type: TypeString},
	{Key: "enterprise_text32", Label: "Enterprise Text32", Type: TypeString},
	{Key: "enterprise_text33", Label: "Enterprise Text33", Type: TypeString},
	{Key: "enterprise_text34", Label: "Enterprise Text34", Type: TypeString},
	{Key: "enterprise_text35", Label: "Enterprise Text35", Type: TypeString},
	{Key: "enterprise_text36", Label: "Enterprise Text36", Type: TypeString},
	{Key: "enterprise_text37", Label: "Enterprise Text37", Type: TypeString},
	{Key: "enterprise_text38", Label: "Enterprise Text38", Type: TypeString},
	{Key: "enterprise_text39", Label: "Enterprise Text39", Type: TypeString},
	{Key: "enterprise_text4", Label: "Enterprise Text4", Type: TypeString},
	{Key: "enterprise_text40", Label: "Enterprise Text40", Type: TypeString},
	{Key: "enterprise_text5", Label: "Enterprise Text5", Type: TypeString},
	{Key: "enterprise_text6", Label: "Enterprise Text6", Type: TypeString},
	{Key: "enterprise_text7", Label: "Enterprise Text7", Type: TypeString},
	{Key: "enterprise_text8", Label: "Enterprise Text8", Type: TypeString},
	{Key: "enterprise_text9", Label: "Enterprise Text9", Type: TypeString},
	{Key: "error_message", Label: "Error Message", Type: TypeString},
	{Key: "estimated", Label: "Estimated", Type: TypeBoolean},
	{Key: "expense_items", Label: "Expense Items", Type: TypeString},
	{Key: "external_early_start", Label: "External Early Start", Type: TypeDate},
	{Key: "external_late_finish", Label: "External Late Finish", Type: TypeDate},
	{Key: "external_task", Label: "External Task", Type: TypeBoolean},
	{Key: "feature_of_work", Label: "Feature of Work", Type: TypeString},
	{Key: "finish", Label: "Finish", Type: TypeDate},
	{Key: "finish1", Label: "Finish1", Type: TypeDate},
	{Key: "finish10", Label: "Finish10", Type: TypeDate},
	{Key: "finish2", Label: "Finish2", Type: TypeDate},
	{Key: "finish3", Label: "Finish3", Type: TypeDate},
	{Key: "finish4", Label: "Finish4", Type: TypeDate},
	{Key: "finish5", Label: "Finish5", Type: TypeDate},
	{Key: "finish6", Label: "Finish6", Type: TypeDate},
	{Key: "finish7", Label: "Finish7", Type: TypeDate},
	{Key: "finish8", Label: "Finish8", Type: TypeDate},
	{Key: "finish9", Label: "Finish9", Type: TypeDate},
	{Key: "finish_slack", Label: "Finish Slack", Type: TypeDuration},
	{Key: "finish_text", Label: "Finish", Type: TypeString},
	{Key: "finish_variance", Label: "Finish Variance", Type: TypeDuration},
	{Key: "fixed_cost", Label: "Fixed Cost", Type: TypeFloat},
	{Key: "fixed_cost_accrual", Label: "Fixed Cost Accrual", Type: TypeString},
	{Key: "fixed_duration", Label: "Fixed Duration", Type: TypeBoolean},
	{Key: "flag1", Label: "Flag1", Type: TypeBoolean},
	{Key: "flag10", Label: "Flag10", Type: TypeBoolean},
	{Key: "flag11", Label: "Flag11", Type: TypeBoolean},
	{Key: "flag12", Label: "Flag12", Type: TypeBoolean},
	{Key: "flag13", Label: "Flag13", Type: TypeBoolean},
	{Key: "flag14", Label: "Flag14", Type: TypeBoolean},
	{Key: "flag15", Label: "Flag15", Type: TypeBoolean},
	{Key: "flag16", Label: "Flag16", Type: TypeBoolean},
	{Key: "flag17", Label: "Flag17", Type: TypeBoolean},
	{Key: "flag18", Label: "Flag18", Type: TypeBoolean},
	{Key: "flag19", Label: "Flag19", Type: TypeBoolean},
	{Key: "flag2", Label: "Flag2", Type: TypeBoolean},
	{Key: "flag20", Label: "Flag20", Type: TypeBoolean},
	{Key: "flag3", Label: "Flag3", Type: TypeBoolean},
	{Key: "flag4", Label: "Flag4", Type: TypeBoolean},
	{Key: "flag5", Label: "Flag5", Type: TypeBoolean},
	{Key: "flag6", Label: "Flag6", Type: TypeBoolean},
	{Key: "flag7", Label: "Flag7", Type: TypeBoolean},
	{Key: "flag8", Label: "Flag8", Type: TypeBoolean},
	{Key: "flag9", Label: "Flag9", Type: TypeBoolean},
	{Key: "free_slack", Label: "Free Slack", Type: TypeDuration},
	{Key: "group_by_summary", Label: "Group By Summary", Type: TypeString},
	{Key: "guid", Label: "GUID", Type: TypeString},
	{Key: "hammock_code", Label: "Hammock Code", Type: TypeBoolean},
	{Key: "hide_bar", Label: "Hide Bar", Type: TypeBoolean},
	{Key: "hyperlink", Label: "Hyperlink", Type: TypeString},
	{Key: "hyperlink_address", Label: "Hyperlink Address", Type: TypeString},
	{Key: "hyperlink_data", Label: "Hyperlink Data", Type: TypeString},
	{Key: "hyperlink_href", Label: "Hyperlink Href", Type: TypeString},
	{Key: "hyperlink_screen_tip", Label: "Hyperlink Screen Tip", Type: TypeString},
	{Key: "hyperlink_subaddress", Label: "Hyperlink SubAddress", Type: TypeString},
	{Key: "id", Label: "ID", Type: TypeInteger},
	{Key: "ignore_resource_calendar", Label: "Ignore Resource Calendar", Type: TypeBoolean},
	{Key: "ignore_warnings", Label: "Ignore Warnings", Type: TypeBoolean},
	{Key: "index", Label: "Index", Type: TypeInteger},
	{Key: "indicators", Label: "Indicators", Type: TypeString},
	{Key: "is_duration_valid", Label: "Is Duration Valid", Type: TypeBoolean},
	{Key: "is_finish_valid", Label: "Is Finish Valid", Type: TypeBoolean},
	{Key: "is_start_valid", Label: "Is Start Valid", Type: TypeBoolean},
	{Key: "late_finish", Label: "Late Finish", Type: TypeDate},
	{Key: "late_start", Label: "Late Start", Type: TypeDate},
	{Key: "leveling_can_split", Label: "Leveling Can Split", Type: TypeBoolean},
	{Key: "leveling_delay", Label: "Leveling Delay", Type: TypeDuration},
	{Key: "leveling_delay_units", Label: "Leveling Delay Units", Type: TypeString},
	{Key: "level_assignments", Label: "Level Assignments", Type: TypeBoolean},
	{Key: "linked_fields", Label: "Linked Fields", Type: TypeBoolean},
	{Key: "longest_path", Label: "Longest Path", Type: TypeBoolean},
	{Key: "mail", Label: "Mail", Type: TypeString},
	{Key: "manager", Label: "Manager", Type: TypeString},
	{Key: "manual_duration", Label: "Manual Duration", Type: TypeDuration},
	{Key: "manual_duration_units", Label: "Manual Duration Units", Type: TypeString},
	{Key: "marked", Label: "Marked", Type: TypeBoolean},
	{Key: "milestone", Label: "Milestone", Type: TypeBoolean},
	{Key: "mod_or_claim_number", Label: "Mod or Claim Number", Type: TypeString},
	{Key: "name", Label: "Task Name", Type: TypeString},
	{Key: "notes", Label: "Notes", Type: TypeString},
	{Key: "number1", Label: "Number1", Type: TypeFloat},
	{Key: "number10", Label: "Number10", Type: TypeFloat},
	{Key: "number11", Label: "Number11", Type: TypeFloat},
	{Key: "number12", Label: "Number12", Type: TypeFloat},
	{Key: "number13", Label: "Number13", Type: TypeFloat},
	{Key: "number14", Label: "Number14", Type: TypeFloat},
	{Key: "number15", Label: "Number15", Type: TypeFloat},
	{Key: "number16", Label: "Number16", Type: TypeFloat},
	{Key: "number17", Label: "Number17", Type: TypeFloat},
	{Key: "number18", Label: "Number18", Type: TypeFloat},
	{Key: "number19", Label: "Number19", Type: TypeFloat},
	{Key: "number2", Label: "Number2", Type: TypeFloat},
	{Key: "number20", Label: "Number20", Type: TypeFloat},
	{Key: "number3", Label: "Number3", Type: TypeFloat},
	{Key: "number4", Label: "Number4", Type: TypeFloat},
	{Key: "number5", Label: "Number5", Type: TypeFloat},
	{Key: "number6", Label: "Number6", Type: TypeFloat},
	{Key: "number7", Label: "Number7", Type: TypeFloat},
	{Key: "number8", Label: "Number8", Type: TypeFloat},
	{Key: "number9", Label: "Number9", Type: TypeFloat},
	{Key: "objects", Label: "Objects", Type: TypeFloat},
	{Key: "outline_code1", Label: "Outline Code1", Type: TypeString},
	{Key: "outline_code10", Label: "Outline Code10", Type: TypeString},
	{Key: "outline_code10_index", Label: "Outline Code10 Index", Type: TypeInteger},
	{Key: "outline_code1_index", Label: "Outline Code1 Index", Type: TypeInteger},
	{Key: "outline_code2", Label: "Outline Code2", Type: TypeString},
	{Key: "outline_code2_index", Label: "Outline Code2 Index", Type: TypeInteger},
	{Key: "outline_code3", Label: "Outline Code3", Type: TypeString},
	{Key: "outline_code3_index", Label: "Outline Code3 Index", Type: TypeInteger},
	{Key: "outline_code4", Label: "Outline Code4", Type: TypeString},
	{Key: "outline_code4_index", Label: "Outline Code4 Index", Type: TypeInteger},
	{Key: "outline_code5", Label: "Outline Code5", Type: TypeString},
	{Key: "outline_code5_index", Label: "Outline Code5 Index", Type: TypeInteger},
	{Key: "outline_code6", Label: "Outline Code6", Type: TypeString},
	{Key: "outline_code6_index", Label: "Outline Code6 Index", Type: TypeInteger},
	{Key: "outline_code7", Label: "Outline Code7", Type: TypeString},
	{Key: "outline_code7_index", Label: "Outline Code7 Index", Type: TypeInteger},
	{Key: "outline_code8", Label: "Outline Code8", Type: TypeString},
	{Key: "outline_code8_index", Label: "Outline Code8 Index", Type: TypeInteger},
	{Key: "outline_code9", Label: "Outline Code9", Type: TypeString},
	{Key: "outline_code9_index", Label: "Outline Code9 Index", Type: TypeInteger},
	{Key: "outline_level", Label: "Outline Level", Type: TypeInteger},
	{Key: "outline_number", Label: "Outline Number", Type: TypeString},
	{Key: "overallocated", Label: "Overallocated", Type: TypeBoolean},
	{Key: "overall_percent_complete", Label: "Overall Percent Complete", Type: TypeFloat},
	{Key: "overtime_cost", Label: "Overtime Cost", Type: TypeFloat},
	{Key: "overtime_work", Label: "Overtime Work", Type: TypeDuration},
	{Key: "parent_task_unique_id", Label: "Parent Task Unique ID", Type: TypeInteger},
	{Key: "path_driven_successor", Label: "Path Driven Successor", Type: TypeBoolean},
	{Key: "path_driving_predecessor", Label: "Path Driving Predecessor", Type: TypeBoolean},
	{Key: "path_predecessor", Label: "Path Predecessor", Type: TypeBoolean},
	{Key: "path_successor", Label: "Path Successor", Type: TypeBoolean},
	{Key: "peak", Label: "Peak", Type: TypeString},
	{Key: "percent_complete", Label: "% Complete", Type: TypeFloat},
	{Key: "percent_complete_type", Label: "Percent Complete Type", Type: TypeString},
	{Key: "percent_work_complete", Label: "% Work Complete", Type: TypeFloat},
	{Key: "phase_of_work", Label: "Phase of Work", Type: TypeString},
	{Key: "physical_percent_complete", Label: "Physical % Complete", Type: TypeFloat},
	{Key: "placeholder", Label: "Placeholder", Type: TypeString},
	{Key: "planned_cost", Label: "Planned Cost", Type: TypeFloat},
	{Key: "planned_duration", Label: "Planned Duration", Type: TypeDuration},
	{Key: "planned_finish", Label: "Planned Finish", Type: TypeDate},
	{Key: "planned_start", Label: "Planned Start", Type: TypeDate},
	{Key: "planned_work", Label: "Planned Work", Type: TypeDuration},
	{Key: "predecessors", Label: "Predecessors", Type: TypeString},
	{Key: "preleveled_finish", Label: "Preleveled Finish", Type: TypeDate},
	{Key: "preleveled_start", Label: "Preleveled Start", Type: TypeDate},
	{Key: "primary_resource_id", Label: "Primary Resource Unique ID", Type: TypeInteger},
	{Key: "priority", Label: "Priority", Type: TypeInteger},
	{Key: "project", Label: "Project", Type: TypeString},
	{Key: "publish", Label: "Publish", Type: TypeString},
	{Key: "recalc_outline_codes", Label: "Recalc Outline Codes", Type: TypeBoolean},
	{Key: "recurring", Label: "Recurring", Type: TypeBoolean},
	{Key: "recurring_data", Label: "Recurring Data", Type: TypeString},
	{Key: "regular_work", Label: "Regular Work", Type: TypeDuration},
	{Key: "remaining_cost", Label: "Remaining Cost", Type: TypeFloat},
	{Key: "remaining_duration", Label: "Remaining Duration", Type: TypeDuration},
	{Key: "remaining_early_finish", Label: "Remaining Early Finish", Type: TypeDate},
	{Key: "remaining_early_start", Label: "Remaining Early Start", Type: TypeDate},
	{Key: "remaining_late_finish", Label: "Remaining Late Finish", Type: TypeDate},
	{Key: "remaining_late_start", Label: "Remaining Late Start", Type: TypeDate},
	{Key: "remaining_overtime_cost", Label: "Remaining Overtime Cost", Type: TypeFloat},
	{Key: "remaining_overtime_work", Label: "Remaining Overtime Work", Type: TypeDuration},
	{Key: "remaining_work", Label: "Remaining Work", Type: TypeDuration},
	{Key: "request_demand", Label: "Request/Demand", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code20", Label: "Resource Enterprise Multi Value Code20", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code21", Label: "Resource Enterprise Multi Value Code21", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code22", Label: "Resource Enterprise Multi Value Code22", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code23", Label: "Resource Enterprise Multi Value Code23", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code24", Label: "Resource Enterprise Multi Value Code24", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code25", Label: "Resource Enterprise Multi Value Code25", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code26", Label: "Resource Enterprise Multi Value Code26", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code27", Label: "Resource Enterprise Multi Value Code27", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code28", Label: "Resource Enterprise Multi Value Code28", Type: TypeString},
	{Key: "resource_enterprise_multi_value_code29", Label: "Resource Enterprise Multi Value Code29", Type: TypeString},
	{Key: "resource_enterprise_outline_code1", Label: "Resource Enterprise Outline Code1", Type: TypeString},
	{Key: "resource_enterprise_outline_code10", Label: "Resource Enterprise Outline Code10", Type: TypeString},
	{Key: "resource_enterprise_outline_code11", Label: "Resource Enterprise Outline Code11", Type: TypeString},
	{Key: "resource_enterprise_outline_code12", Label: "Resource Enterprise Outline Code12", Type: TypeString},
	{Key: "resource_enterprise_outline_code13", Label: "Resource Enterprise Outline Code13", Type: TypeString},
	{Key: "resource_enterprise_outline_code14", Label: "Resource Enterprise Outline Code14", Type: TypeString},
	{Key: "resource_enterprise_outline_code15", Label: "Resource Enterprise Outline Code15", Type: TypeString},
	{Key: "resource_enterprise_outline_code16", Label: "Resource Enterprise Outline Code16", Type: TypeString},
	{Key: "resource_enterprise_outline_code17", Label: "Resource Enterprise Outline Code17", Type: TypeString},
	{Key: "resource_enterprise_outline_code18", Label: "Resource Enterprise Outline Code18", Type: TypeString},
	{Key: "resource_enterprise_outline_code19", Label: "Resource Enterprise Outline Code19", Type: TypeString},
	{Key: "resource_enterprise_outline_code2", Label: "Resource Enterprise Outline Code2", Type: TypeString},
	{Key: "resource_enterprise_outline_code20", Label: "Resource Enterprise Outline Code20", Type: TypeString},
	{Key: "resource_enterprise_outline_code21", Label: "Resource Enterprise Outline Code21", Type: TypeString},
	{Key: "resource_enterprise_outline_code22", Label: "Resource Enterprise Outline Code22", Type: TypeString},
	{Key: "resource_enterprise_outline_code23", Label: "Resource Enterprise Outline Code23", Type: TypeString},
	{Key: "resource_enterprise_outline_code24", Label: "Resource Enterprise Outline Code24", Type: TypeString},
	{Key: "resource_enterprise_outline_code25", Label: "Resource Enterprise Outline Code25", Type: TypeString},
	{Key: "resource_enterprise_outline_code26", Label: "Resource Enterprise Outline Code26", Type: TypeString},
	{Key: "resource_enterprise_outline_code27", Label: "Resource Enterprise Outline Code27", Type: TypeString},
	{Key: "resource_enterprise_outline_code28", Label: "Resource Enterprise Outline Code28", Type: TypeString},
	{Key: "resource_enterprise_outline_code29", Label: "Resource Enterprise Outline Code29", Type: TypeString},
	{Key: "resource_enterprise_outline_code3", Label: "Resource Enterprise Outline Code3", Type: TypeString},
	{Key: "resource_enterprise_outline_code4", Label: "Resource Enterprise Outline Code4", Type: TypeString},
	{Key: "resource_enterprise_outline_code5", Label: "Resource Enterprise Outline Code5", Type: TypeString},
	{Key: "resource_enterprise_outline_code6", Label: "Resource Enterprise Outline Code6", Type: TypeString},
	{Key: "resource_enterprise_outline_code7", Label: "Resource Enterprise Outline Code7", Type: TypeString},
	{Key: "resource_enterprise_outline_code8", Label: "Resource Enterprise Outline Code8", Type: TypeString},
	{Key: "resource_enterprise_outline_code9", Label: "Resource Enterprise Outline Code9", Type: TypeString},
	{Key: "resource_enterprise_rbs", Label: "Resource Enterprise Rbs", Type: TypeString},
	{Key: "resource_group", Label: "Resource Group", Type: TypeString},
	{Key: "resource_initials", Label: "Resource Initials", Type: TypeString},
	{Key: "resource_names", Label: "Resource Names", Type: TypeString},
	{Key: "resource_phonetics", Label: "Resource Phonetics", Type: TypeString},
	{Key: "resource_type", Label: "Resource Type", Type: TypeString},
	{Key: "response_pending", Label: "Response Pending", Type: TypeBoolean},
	{Key: "responsibility_code", Label: "Responsibility Code", Type: TypeString},
	{Key: "resume", Label: "Resume", Type: TypeDate},
	{Key: "resume_no_earlier_than", Label: "Resume No Earlier Than", Type: TypeDate},
	{Key: "rollup", Label: "Rollup", Type: TypeBoolean},
	{Key: "scheduled_duration", Label: "Scheduled Duration", Type: TypeDuration},
	{Key: "scheduled_finish", Label: "Scheduled Finish", Type: TypeDate},
	{Key: "scheduled_start", Label: "Scheduled Start", Type: TypeDate},
	{Key: "secondary_constraint_date", Label: "Secondary Constraint Date", Type: TypeDate},
	{Key: "secondary_constraint_type", Label: "Secondary Constraint Type", Type: TypeString},
	{Key: "section", Label: "Section", Type: TypeString},
	{Key: "show_on_board", Label: "Show On Board", Type: TypeString},
	{Key: "spi", Label: "SPI", Type: TypeFloat},
	{Key: "splits", Label: "Splits", Type: TypeString},
	{Key: "sprint", Label: "Sprint", Type: TypeString},
	{Key: "start", Label: "Start", Type: TypeDate},
	{Key: "start1", Label: "Start1", Type: TypeDate},
	{Key: "start10", Label: "Start10", Type: TypeDate},
	{Key: "start2", Label: "Start2", Type: TypeDate},
	{Key: "start3", Label: "Start3", Type: TypeDate},
	{Key: "start4", Label: "Start4", Type: TypeDate},
	{Key: "start5", Label: "Start5", Type: TypeDate},
	{Key: "start6", Label: "Start6", Type: TypeDate},
	{Key: "start7", Label: "Start7", Type: TypeDate},
	{Key: "start8", Label: "Start8", Type: TypeDate},
	{Key: "start9", Label: "Start9", Type: TypeDate},
	{Key: "start_slack", Label: "Start Slack", Type: TypeDuration},
	{Key: "start_text", Label: "Start", Type: TypeString},
	{Key: "start_variance", Label: "Start Variance", Type: TypeDuration},
	{Key: "status", Label: "Status", Type: TypeString},
	{Key: "status_indicator", Label: "Status Indicator", Type: TypeString},
	{Key: "status_manager", Label: "Status Manager", Type: TypeString},
	{Key: "stop", Label: "Stop", Type: TypeDate},
	{Key: "stored_material", Label: "Stored Material", Type: TypeFloat},
	{Key: "subproject", Label: "Subproject", Type: TypeString},
	{Key: "subproject_file", Label: "Subproject File", Type: TypeString},
	{Key: "subproject_read_only", Label: "Subproject Read Only", Type: TypeBoolean},
	{Key: "subproject_tasks_uniqueid_offset", Label: "Subproject Tasks Unique ID Offset", Type: TypeInteger},
	{Key: "subproject_task_id", Label: "Subproject Task ID", Type: TypeInteger},
	{Key: "subproject_unique_task_id", Label: "Subproject Unique Task ID", Type: TypeInteger},
	{Key: "successors", Label: "Successors", Type: TypeString},
	{Key: "summary", Label: "Summary", Type: TypeBoolean},
	{Key: "summary_progress", Label: "Summary Progress", Type: TypeDate},
	{Key: "suspend_date", Label: "Suspend Date", Type: TypeDate},
	{Key: "sv", Label: "SV", Type: TypeFloat},
	{Key: "svpercent", Label: "SV%", Type: TypeFloat},
	{Key: "task_calendar", Label: "Task Calendar", Type: TypeString},
	{Key: "task_calendar_guid", Label: "Task Calendar GUID", Type: TypeString},
	{Key: "task_mode", Label: "Task Mode", Type: TypeBoolean},
	{Key: "task_summary", Label: "Task Summary", Type: TypeString},
	{Key: "tcpi", Label: "TCPI", Type: TypeFloat},
	{Key: "teamstatus_pending", Label: "TeamStatus Pending", Type: TypeBoolean},
	{Key: "text1", Label: "Text1", Type: TypeString},
	{Key: "text10", Label: "Text10", Type: TypeString},
	{Key: "text11", Label: "Text11", Type: TypeString},
	{Key: "text12", Label: "Text12", Type: TypeString},
	{Key: "text13", Label: "Text13", Type: TypeString},
	{Key: "text14", Label: "Text14", Type: TypeString},
	{Key: "text15", Label: "Text15", Type: TypeString},
	{Key: "text16", Label: "Text16", Type: TypeString},
	{Key: "text17", Label: "Text17", Type: TypeString},
	{Key: "text18", Label: "Text18", Type: TypeString},
	{Key: "text19", Label: "Text19", Type: TypeString},
	{Key: "text2", Label: "Text2", Type: TypeString},
	{Key: "text20", Label: "Text20", Type: TypeString},
	{Key: "text21", Label: "Text21", Type: TypeString},
	{Key: "text22", Label: "Text22", Type: TypeString},
	{Key: "text23", Label: "Text23", Type: TypeString},
	{Key: "text24", Label: "Text24", Type: TypeString},
	{Key: "text25", Label: "Text25", Type: TypeString},
	{Key: "text26", Label: "Text26", Type: TypeString},
	{Key: "text27", Label: "Text27", Type: TypeString},
	{Key: "text28", Label: "Text28", Type: TypeString},
	{Key: "text29", Label: "Text29", Type: TypeString},
	{Key: "text3", Label: "Text3", Type: TypeString},
	{Key: "text30", Label: "Text30", Type: TypeString},
	{Key: "text4", Label: "Text4", Type: TypeString},
	{Key: "text5", Label: "Text5", Type: TypeString},
	{Key: "text6", Label: "Text6", Type: TypeString},
	{Key: "text7", Label: "Text7", Type: TypeString},
	{Key: "text8", Label: "Text8", Type: TypeString},
	{Key: "text9", Label: "Text9", Type: TypeString},
	{Key: "total_slack", Label: "Total Slack", Type: TypeDuration},
	{Key: "type", Label: "Type", Type: TypeString},
	{Key: "unavailable", Label: "<Unavailable>", Type: TypeString},
	{Key: "unique_id", Label: "Unique ID", Type: TypeInteger},
	{Key: "unique_id_predecessors", Label: "Unique ID Predecessors", Type: TypeString},
	{Key: "unique_id_successors", Label: "Unique ID Successors", Type: TypeString},
	{Key: "update_needed", Label: "Update Needed", Type: TypeBoolean},
	{Key: "vac", Label: "VAC", Type: TypeFloat},
	{Key: "warning", Label: "Warning", Type: TypeString},
	{Key: "wbs", Label: "WBS", Type: TypeString},
	{Key: "wbs_predecessors", Label: "WBS Predecessors", Type: TypeString},
	{Key: "wbs_successors", Label: "WBS Successors", Type: TypeString},
	{Key: "work", Label: "Work", Type: TypeDuration},
	{Key: "workers_per_day", Label: "Workers per Day", Type: TypeInteger},
	{Key: "work_area_code", Label: "Work Area Code", Type: TypeString},
	{Key: "work_contour", Label: "Work Contour", Type: TypeString},
	{Key: "work_variance", Label: "Work Variance", Type: TypeDuration},
}
