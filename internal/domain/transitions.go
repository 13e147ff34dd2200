package domain

// bugTransitions - статическая таблица разрешённых переходов статуса бага.
// Консультируется при каждой смене статуса.
var bugTransitions = map[BugStatus][]BugStatus{
	BugStatusOpen:       {BugStatusInProgress, BugStatusResolved, BugStatusClosed},
	BugStatusInProgress: {BugStatusResolved, BugStatusOpen, BugStatusClosed},
	BugStatusResolved:   {BugStatusClosed, BugStatusReopened},
	BugStatusClosed:     {BugStatusReopened},
	BugStatusReopened:   {BugStatusInProgress, BugStatusResolved, BugStatusClosed},
}

// testCaseTransitions существует только для подсказок UI:
// смена статуса тест-кейса не валидируется, разрешён любой переход.
var testCaseTransitions = map[TestCaseStatus][]TestCaseStatus{
	TestCaseStatusDraft:      {TestCaseStatusReady, TestCaseStatusInReview},
	TestCaseStatusReady:      {TestCaseStatusInReview, TestCaseStatusDeprecated},
	TestCaseStatusInReview:   {TestCaseStatusApproved, TestCaseStatusDraft},
	TestCaseStatusApproved:   {TestCaseStatusDeprecated, TestCaseStatusInReview},
	TestCaseStatusDeprecated: {TestCaseStatusDraft},
}

// CanTransitionBug проверяет, разрешён ли переход статуса бага
func CanTransitionBug(from, to BugStatus) bool {
	for _, next := range bugTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BugTransitionsFrom возвращает список разрешённых следующих статусов бага
func BugTransitionsFrom(from BugStatus) []BugStatus {
	next := bugTransitions[from]
	out := make([]BugStatus, len(next))
	copy(out, next)
	return out
}

// TestCaseTransitionsFrom возвращает подсказку следующих статусов тест-кейса
func TestCaseTransitionsFrom(from TestCaseStatus) []TestCaseStatus {
	next := testCaseTransitions[from]
	out := make([]TestCaseStatus, len(next))
	copy(out, next)
	return out
}

// ValidBugStatus проверяет, что строка является известным статусом бага
func ValidBugStatus(s BugStatus) bool {
	_, ok := bugTransitions[s]
	return ok
}

// ValidTestCaseStatus проверяет, что строка является известным статусом тест-кейса
func ValidTestCaseStatus(s TestCaseStatus) bool {
	_, ok := testCaseTransitions[s]
	return ok
}
