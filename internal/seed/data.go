package seed

import "campus-portal/internal/model"

// ── 考试（相对考试周周一的天数偏移） ──

type examSeed struct {
	dayOffset int
	exam      model.Exam
}

var examSeeds = []examSeed{
	{1, model.Exam{ID: "1", CourseCode: "MAT101", CourseName: "Matematik I", StartTime: "09:00", EndTime: "10:30", Building: "Mühendislik Fakültesi", Room: "Amfi 4", Floor: "Zemin Kat"}},
	{1, model.Exam{ID: "2", CourseCode: "BIL102", CourseName: "Programlama I", StartTime: "11:00", EndTime: "12:30", Building: "Mühendislik B Blok", Room: "302 Nolu Derslik", Floor: "Kat 3"}},
	{1, model.Exam{ID: "3", CourseCode: "FIZ101", CourseName: "Fizik I", StartTime: "14:00", EndTime: "15:30", Building: "Fen Fakültesi", Room: "Lab 2 - B Blok"}},
	{2, model.Exam{ID: "4", CourseCode: "BIL201", CourseName: "Veri Yapıları", StartTime: "09:00", EndTime: "10:30", Building: "Mühendislik Fakültesi", Room: "Derslik 104"}},
	{2, model.Exam{ID: "5", CourseCode: "KIM101", CourseName: "Kimya I", StartTime: "13:00", EndTime: "14:30", Building: "Fen Fakültesi", Room: "Amfi 2"}},
	{3, model.Exam{ID: "6", CourseCode: "YZK201", CourseName: "Algoritma", StartTime: "10:00", EndTime: "11:30", Building: "Mühendislik A Blok", Room: "Lab 1"}},
	{3, model.Exam{ID: "7", CourseCode: "ELE101", CourseName: "Elektrik", StartTime: "15:00", EndTime: "16:30", Building: "Mühendislik B Blok", Room: "Amfi 3"}},
	{1, model.Exam{ID: "8", CourseCode: "HUK201", CourseName: "Ceza Hukuku", StartTime: "09:00", EndTime: "10:30", Building: "Hukuk Fakültesi", Room: "Derslik 201"}},
}

// ── 缺勤统计 ──

var attendanceSeeds = []model.AttendanceCourse{
	{ID: "1", Code: "BIL-201", Name: "Veri Yapıları ve Algoritmalar", Instructor: "Dr. Öğr. Üyesi Ahmet Yılmaz", TotalHours: 12, UsedHours: 4, RemainingHours: 8, Status: model.AttendanceStatusNormal},
	{ID: "2", Code: "BIL-203", Name: "Nesne Yönelimli Programlama", Instructor: "Doç. Dr. Elif Demir", TotalHours: 10, UsedHours: 8, RemainingHours: 2, Status: model.AttendanceStatusWarning},
	{ID: "3", Code: "BIL-305", Name: "Yapay Zeka Temelleri", Instructor: "Prof. Dr. Mehmet Can", TotalHours: 8, UsedHours: 9, RemainingHours: 0, Status: model.AttendanceStatusCritical},
	{ID: "4", Code: "BIL-307", Name: "Mobil Programlama", Instructor: "Öğr. Gör. Ali Veli", TotalHours: 14, UsedHours: 2, RemainingHours: 12, Status: model.AttendanceStatusNormal},
	{ID: "5", Code: "BIL-301", Name: "Veritabanı Yönetimi", Instructor: "Dr. Ayşe Fatma", TotalHours: 10, UsedHours: 5, RemainingHours: 5, Status: model.AttendanceStatusNormal,
		Absences: []model.AbsenceRecord{
			{ID: "1", Date: "2025-03-12", Status: "DEVAMSIZ"},
			{ID: "2", Date: "2025-03-05", Status: "DEVAMSIZ"},
			{ID: "3", Date: "2025-02-26", Status: "DEVAMSIZ"},
			{ID: "4", Date: "2025-02-19", Status: "DEVAMSIZ"},
		}},
}

// ── 课程表 ──

var scheduleSeeds = []model.ScheduleCourse{
	// Çarşamba
	{ID: "1", Name: "VERİ YAPILARI", Instructor: "Dr. Öğr. Ü. Alican DOĞAN", StartTime: "08:45", EndTime: "09:30", Room: "G 201", DayOfWeek: 2},
	{ID: "2", Name: "VERİ YAPILARI", Instructor: "Dr. Öğr. Ü. Alican DOĞAN", StartTime: "09:35", EndTime: "10:20", Room: "G 201", DayOfWeek: 2},
	{ID: "3", Name: "YAPAY ZEKA GİRİŞ", Instructor: "Dr. Öğr. Ü. Fatma ŞAHİN", StartTime: "10:25", EndTime: "11:10", Room: "G 104", DayOfWeek: 2},
	{ID: "4", Name: "TÜRK DİLİ", Instructor: "Öğr. Gör. Dr. Önder POTUR", StartTime: "11:15", EndTime: "12:00", Room: "UZAKTAN EĞİTİM", DayOfWeek: 2, IsOnline: true},
	{ID: "5", Name: "MATEMATİK", Instructor: "Dr. Öğr. Ü. Muhammet KUTLU", StartTime: "14:30", EndTime: "15:15", Room: "G 205", DayOfWeek: 2},
	{ID: "6", Name: "MATEMATİK", Instructor: "Dr. Öğr. Ü. Muhammet KUTLU", StartTime: "15:20", EndTime: "16:05", Room: "G 205", DayOfWeek: 2},
	// Perşembe：两门课同时段，演示冲突标记
	{ID: "7", Name: "OFİS PROGRAMLARI", Instructor: "Dr. Öğr. Ü. Ahmet YILMAZ", StartTime: "08:45", EndTime: "09:30", Room: "G 201", DayOfWeek: 3},
	{ID: "8", Name: "İŞLETME MATEMATİĞİ", Instructor: "Dr. Öğr. Ü. Ayşe KAYA", StartTime: "08:45", EndTime: "09:30", Room: "G 102", DayOfWeek: 3},
	{ID: "9", Name: "OFİS PROGRAMLARI", Instructor: "Dr. Öğr. Ü. Ahmet YILMAZ", StartTime: "09:35", EndTime: "10:20", Room: "G 201", DayOfWeek: 3},
	{ID: "10", Name: "İŞLETME MATEMATİĞİ", Instructor: "Dr. Öğr. Ü. Ayşe KAYA", StartTime: "09:35", EndTime: "10:20", Room: "G 102", DayOfWeek: 3},
	{ID: "11", Name: "OFİS PROGRAMLARI", Instructor: "Dr. Öğr. Ü. Ahmet YILMAZ", StartTime: "10:25", EndTime: "11:10", Room: "G 201", DayOfWeek: 3},
	{ID: "12", Name: "İŞLETME MATEMATİĞİ", Instructor: "Dr. Öğr. Ü. Ayşe KAYA", StartTime: "10:25", EndTime: "11:10", Room: "G 102", DayOfWeek: 3},
	{ID: "13", Name: "YÖNETİM ORGANİZASYONU", Instructor: "Prof. Dr. Mehmet CAN", StartTime: "14:30", EndTime: "15:15", Room: "G 208", DayOfWeek: 3},
	{ID: "14", Name: "YÖNETİM ORGANİZASYONU", Instructor: "Prof. Dr. Mehmet CAN", StartTime: "15:20", EndTime: "16:05", Room: "G 208", DayOfWeek: 3},
	{ID: "15", Name: "YÖNETİM ORGANİZASYONU", Instructor: "Prof. Dr. Mehmet CAN", StartTime: "16:10", EndTime: "16:55", Room: "G 208", DayOfWeek: 3},
}

// ── 食堂菜单模板（按星期轮换） ──

type menuTemplate struct {
	likes    int
	dislikes int
	meals    []model.Meal
}

var menuTemplates = []menuTemplate{
	{likes: 142, dislikes: 38, meals: []model.Meal{
		{Name: "Mercimek Çorbası", Category: "çorba", Calories: 180},
		{Name: "Tavuk Sote", Category: "ana yemek", Calories: 420},
		{Name: "Pirinç Pilavı", Category: "yardımcı", Calories: 320},
		{Name: "Sütlaç", Category: "tatlı", Calories: 260},
	}},
	{likes: 98, dislikes: 61, meals: []model.Meal{
		{Name: "Ezogelin Çorbası", Category: "çorba", Calories: 170},
		{Name: "Kuru Fasulye", Category: "ana yemek", Calories: 380},
		{Name: "Bulgur Pilavı", Category: "yardımcı", Calories: 290},
		{Name: "Cacık", Category: "yardımcı", Calories: 90},
	}},
	{likes: 165, dislikes: 22, meals: []model.Meal{
		{Name: "Yayla Çorbası", Category: "çorba", Calories: 160},
		{Name: "Izgara Köfte", Category: "ana yemek", Calories: 480},
		{Name: "Patates Püresi", Category: "yardımcı", Calories: 240},
		{Name: "Revani", Category: "tatlı", Calories: 310},
	}},
	{likes: 76, dislikes: 54, meals: []model.Meal{
		{Name: "Domates Çorbası", Category: "çorba", Calories: 150},
		{Name: "Etli Nohut", Category: "ana yemek", Calories: 410},
		{Name: "Şehriyeli Pirinç Pilavı", Category: "yardımcı", Calories: 330},
		{Name: "Mevsim Salata", Category: "yardımcı", Calories: 70},
	}},
	{likes: 131, dislikes: 29, meals: []model.Meal{
		{Name: "Tarhana Çorbası", Category: "çorba", Calories: 175},
		{Name: "Fırın Makarna", Category: "ana yemek", Calories: 450},
		{Name: "Mevsim Salata", Category: "yardımcı", Calories: 70},
		{Name: "Kemalpaşa Tatlısı", Category: "tatlı", Calories: 340},
	}},
	{likes: 40, dislikes: 12, meals: []model.Meal{
		{Name: "Mercimek Çorbası", Category: "çorba", Calories: 180},
		{Name: "Tavuk Döner", Category: "ana yemek", Calories: 460},
		{Name: "Ayran", Category: "yardımcı", Calories: 80},
	}},
	{likes: 35, dislikes: 15, meals: []model.Meal{
		{Name: "Ezogelin Çorbası", Category: "çorba", Calories: 170},
		{Name: "Karnıyarık", Category: "ana yemek", Calories: 390},
		{Name: "Pirinç Pilavı", Category: "yardımcı", Calories: 320},
	}},
}
