package registry

// Module is a named HRMS feature area. The set is fixed at build time: modules
// are enabled/disabled per tenant and granted per role, never created at
// runtime.
type Module struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	ShortLabel string `json:"short_label"`
}

// Modules is the ordered registry the console renders from. The list mirrors
// the upstream product catalog verbatim, including its duplicate "timesheet"
// entry; Keys() de-duplicates so downstream set logic never sees it twice.
var Modules = []Module{
	{Key: "employees", Label: "Employee Management", ShortLabel: "Employees"},
	{Key: "attendance", Label: "Attendance Tracking", ShortLabel: "Attendance"},
	{Key: "leave", Label: "Leave Management", ShortLabel: "Leave"},
	{Key: "payroll", Label: "Payroll Processing", ShortLabel: "Payroll"},
	{Key: "assets", Label: "Asset Management", ShortLabel: "Assets"},
	{Key: "documents", Label: "Document Management", ShortLabel: "Documents"},
	{Key: "timesheet", Label: "Timesheet", ShortLabel: "Timesheet"},
	{Key: "projects", Label: "Project Tracking", ShortLabel: "Projects"},
	{Key: "timesheet", Label: "Timesheet", ShortLabel: "Timesheet"},
	{Key: "performance", Label: "Performance Reviews", ShortLabel: "Performance"},
	{Key: "recruitment", Label: "Recruitment", ShortLabel: "Recruitment"},
	{Key: "reports", Label: "Reports & Analytics", ShortLabel: "Reports"},
}

// Keys returns the ordered, de-duplicated module key list.
func Keys() []string {
	seen := make(map[string]struct{}, len(Modules))
	keys := make([]string, 0, len(Modules))
	for _, m := range Modules {
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}
		keys = append(keys, m.Key)
	}
	return keys
}

// ByKey returns the first registry entry with the given key.
func ByKey(key string) (Module, bool) {
	for _, m := range Modules {
		if m.Key == key {
			return m, true
		}
	}
	return Module{}, false
}

// Has reports whether key names a registry module.
func Has(key string) bool {
	_, ok := ByKey(key)
	return ok
}
