package service

import (
	"time"

	"expense-tracker/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims

	getUserByID = store.GetUserByID
	getUserByLogin = store.GetUserByLogin
	userExists = store.UserExists
	createUserWithDefaults = store.CreateUserWithDefaults
	updateUserProfile = store.UpdateUserProfile
	updateUserPassword = store.UpdateUserPassword

	listCategories = store.ListCategories
	getCategory = store.GetCategory
	categoryNameExists = store.CategoryNameExists
	createCategory = store.CreateCategory
	updateCategory = store.UpdateCategory
	countExpensesByCategory = store.CountExpensesByCategory
	deleteCategory = store.DeleteCategory
	categoryStats = store.CategoryStats

	listExpenses = store.ListExpenses
	getExpense = store.GetExpense
	createExpense = store.CreateExpense
	updateExpense = store.UpdateExpense
	deleteExpense = store.DeleteExpense

	expenseSummary = store.ExpenseSummary
	monthTotal = store.MonthTotal
	averagePerMonth = store.AveragePerMonth
	expensesByPeriod = store.ExpensesByPeriod
	monthlyStats = store.MonthlyStats
	categoryBreakdownStats = store.CategoryBreakdownStats

	getSettings = store.GetSettings
	upsertSettings = store.UpsertSettings
}

// fastHash 讓測試不用跑完整 bcrypt cost
func fastHash() {
	bcryptGenerateFromPassword = func(pw []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	}
}

func strPtr(s string) *string { return &s }

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }
