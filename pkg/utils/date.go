package utils

import (
	"time"
)

// SaleDateLayout é o formato dia/mês/ano usado pela API de vendas
const SaleDateLayout = "02/01/2006"

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func ParseSaleDate(dateStr string) (time.Time, error) {
	return time.Parse(SaleDateLayout, dateStr)
}

// MonthName retorna o nome do mês em português
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// MonthNames retorna os doze meses em ordem, usados como eixo X
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames[:])
	return names
}

// FirstDayOfMonth trunca a data para o primeiro dia do mês, em UTC
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
