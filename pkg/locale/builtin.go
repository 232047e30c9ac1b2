package locale

import (
	"strings"

	"github.com/dmitrymomot/babel/pkg/plural"
)

// Builtins returns fresh copies of the bundled locales: en, en-gb, de, fr,
// es, pt-br, ru, pl and ja.
func Builtins() []*Locale {
	return []*Locale{
		English(),
		BritishEnglish(),
		German(),
		French(),
		Spanish(),
		BrazilianPortuguese(),
		Russian(),
		Polish(),
		Japanese(),
	}
}

func months(s string) (out [12]string) {
	copy(out[:], strings.Split(s, "_"))
	return out
}

func days(s string) (out [7]string) {
	copy(out[:], strings.Split(s, "_"))
	return out
}

func one(pattern string) Forms {
	return Forms{plural.Other: pattern}
}

func slavic(one, few, many string) Forms {
	return Forms{plural.One: one, plural.Few: few, plural.Many: many, plural.Other: many}
}

// English is the "en" locale.
func English() *Locale {
	return &Locale{
		Code:          "en",
		Months:        MonthNames{Standalone: months("January_February_March_April_May_June_July_August_September_October_November_December")},
		MonthsShort:   MonthNames{Standalone: months("Jan_Feb_Mar_Apr_May_Jun_Jul_Aug_Sep_Oct_Nov_Dec")},
		Weekdays:      days("Sunday_Monday_Tuesday_Wednesday_Thursday_Friday_Saturday"),
		WeekdaysShort: days("Sun_Mon_Tue_Wed_Thu_Fri_Sat"),
		WeekdaysMin:   days("Su_Mo_Tu_We_Th_Fr_Sa"),
		LongDateFormat: map[string]string{
			LT:   "h:mm A",
			LTS:  "h:mm:ss A",
			L:    "MM/DD/YYYY",
			LL:   "MMMM D, YYYY",
			LLL:  "MMMM D, YYYY h:mm A",
			LLLL: "dddd, MMMM D, YYYY h:mm A",
		},
		Meridiem: englishMeridiem,
		Ordinal:  EnglishOrdinal,
		RelativeTime: RelativeTime{
			Future: "in %s",
			Past:   "%s ago",
			Units: map[string]Forms{
				"s":  one("a few seconds"),
				"ss": one("%d seconds"),
				"m":  one("a minute"),
				"mm": one("%d minutes"),
				"h":  one("an hour"),
				"hh": one("%d hours"),
				"d":  one("a day"),
				"dd": one("%d days"),
				"w":  one("a week"),
				"ww": one("%d weeks"),
				"M":  one("a month"),
				"MM": one("%d months"),
				"y":  one("a year"),
				"yy": one("%d years"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[Today at] LT",
			NextDay:  "[Tomorrow at] LT",
			NextWeek: "dddd [at] LT",
			LastDay:  "[Yesterday at] LT",
			LastWeek: "[Last] dddd [at] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 0, Doy: 6},
		Plural: plural.English,
	}
}

// BritishEnglish is the "en-gb" locale.
func BritishEnglish() *Locale {
	l := English()
	l.Code = "en-gb"
	l.LongDateFormat = map[string]string{
		LT:   "HH:mm",
		LTS:  "HH:mm:ss",
		L:    "DD/MM/YYYY",
		LL:   "D MMMM YYYY",
		LLL:  "D MMMM YYYY HH:mm",
		LLLL: "dddd, D MMMM YYYY HH:mm",
	}
	l.Week = Week{Dow: 1, Doy: 4}
	return l
}

// German is the "de" locale.
func German() *Locale {
	return &Locale{
		Code:          "de",
		Months:        MonthNames{Standalone: months("Januar_Februar_März_April_Mai_Juni_Juli_August_September_Oktober_November_Dezember")},
		MonthsShort:   MonthNames{Standalone: months("Jan._Feb._März_Apr._Mai_Juni_Juli_Aug._Sep._Okt._Nov._Dez.")},
		Weekdays:      days("Sonntag_Montag_Dienstag_Mittwoch_Donnerstag_Freitag_Samstag"),
		WeekdaysShort: days("So._Mo._Di._Mi._Do._Fr._Sa."),
		WeekdaysMin:   days("So_Mo_Di_Mi_Do_Fr_Sa"),
		LongDateFormat: map[string]string{
			LT:   "HH:mm",
			LTS:  "HH:mm:ss",
			L:    "DD.MM.YYYY",
			LL:   "D. MMMM YYYY",
			LLL:  "D. MMMM YYYY HH:mm",
			LLLL: "dddd, D. MMMM YYYY HH:mm",
		},
		Ordinal: DotOrdinal,
		RelativeTime: RelativeTime{
			Future: "in %s",
			Past:   "vor %s",
			Units: map[string]Forms{
				"s":  one("ein paar Sekunden"),
				"ss": one("%d Sekunden"),
				"m":  one("eine Minute"),
				"mm": one("%d Minuten"),
				"h":  one("eine Stunde"),
				"hh": one("%d Stunden"),
				"d":  one("ein Tag"),
				"dd": one("%d Tage"),
				"w":  one("eine Woche"),
				"ww": one("%d Wochen"),
				"M":  one("ein Monat"),
				"MM": one("%d Monate"),
				"y":  one("ein Jahr"),
				"yy": one("%d Jahre"),
			},
			Suffixed: map[string]Forms{
				"m":  one("einer Minute"),
				"h":  one("einer Stunde"),
				"d":  one("einem Tag"),
				"dd": one("%d Tagen"),
				"w":  one("einer Woche"),
				"M":  one("einem Monat"),
				"MM": one("%d Monaten"),
				"y":  one("einem Jahr"),
				"yy": one("%d Jahren"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[heute um] LT [Uhr]",
			NextDay:  "[morgen um] LT [Uhr]",
			NextWeek: "dddd [um] LT [Uhr]",
			LastDay:  "[gestern um] LT [Uhr]",
			LastWeek: "[letzten] dddd [um] LT [Uhr]",
			SameElse: "L",
		},
		Week:   Week{Dow: 1, Doy: 4},
		Plural: plural.English,
	}
}

// French is the "fr" locale.
func French() *Locale {
	return &Locale{
		Code:          "fr",
		Months:        MonthNames{Standalone: months("janvier_février_mars_avril_mai_juin_juillet_août_septembre_octobre_novembre_décembre")},
		MonthsShort:   MonthNames{Standalone: months("janv._févr._mars_avr._mai_juin_juil._août_sept._oct._nov._déc.")},
		Weekdays:      days("dimanche_lundi_mardi_mercredi_jeudi_vendredi_samedi"),
		WeekdaysShort: days("dim._lun._mar._mer._jeu._ven._sam."),
		WeekdaysMin:   days("di_lu_ma_me_je_ve_sa"),
		LongDateFormat: map[string]string{
			LT:   "HH:mm",
			LTS:  "HH:mm:ss",
			L:    "DD/MM/YYYY",
			LL:   "D MMMM YYYY",
			LLL:  "D MMMM YYYY HH:mm",
			LLLL: "dddd D MMMM YYYY HH:mm",
		},
		Ordinal: FrenchOrdinal,
		RelativeTime: RelativeTime{
			Future: "dans %s",
			Past:   "il y a %s",
			Units: map[string]Forms{
				"s":  one("quelques secondes"),
				"ss": one("%d secondes"),
				"m":  one("une minute"),
				"mm": one("%d minutes"),
				"h":  one("une heure"),
				"hh": one("%d heures"),
				"d":  one("un jour"),
				"dd": one("%d jours"),
				"w":  one("une semaine"),
				"ww": one("%d semaines"),
				"M":  one("un mois"),
				"MM": one("%d mois"),
				"y":  one("un an"),
				"yy": one("%d ans"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[Aujourd’hui à] LT",
			NextDay:  "[Demain à] LT",
			NextWeek: "dddd [à] LT",
			LastDay:  "[Hier à] LT",
			LastWeek: "dddd [dernier à] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 1, Doy: 4},
		Plural: plural.Romance,
	}
}

// Spanish is the "es" locale.
func Spanish() *Locale {
	return &Locale{
		Code:          "es",
		Months:        MonthNames{Standalone: months("enero_febrero_marzo_abril_mayo_junio_julio_agosto_septiembre_octubre_noviembre_diciembre")},
		MonthsShort:   MonthNames{Standalone: months("ene._feb._mar._abr._may._jun._jul._ago._sep._oct._nov._dic.")},
		Weekdays:      days("domingo_lunes_martes_miércoles_jueves_viernes_sábado"),
		WeekdaysShort: days("dom._lun._mar._mié._jue._vie._sáb."),
		WeekdaysMin:   days("do_lu_ma_mi_ju_vi_sá"),
		LongDateFormat: map[string]string{
			LT:   "H:mm",
			LTS:  "H:mm:ss",
			L:    "DD/MM/YYYY",
			LL:   "D [de] MMMM [de] YYYY",
			LLL:  "D [de] MMMM [de] YYYY H:mm",
			LLLL: "dddd, D [de] MMMM [de] YYYY H:mm",
		},
		Ordinal: IberianOrdinal,
		RelativeTime: RelativeTime{
			Future: "en %s",
			Past:   "hace %s",
			Units: map[string]Forms{
				"s":  one("unos segundos"),
				"ss": one("%d segundos"),
				"m":  one("un minuto"),
				"mm": one("%d minutos"),
				"h":  one("una hora"),
				"hh": one("%d horas"),
				"d":  one("un día"),
				"dd": one("%d días"),
				"w":  one("una semana"),
				"ww": one("%d semanas"),
				"M":  one("un mes"),
				"MM": one("%d meses"),
				"y":  one("un año"),
				"yy": one("%d años"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[hoy a las] LT",
			NextDay:  "[mañana a las] LT",
			NextWeek: "dddd [a las] LT",
			LastDay:  "[ayer a las] LT",
			LastWeek: "[el] dddd [pasado a las] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 1, Doy: 4},
		Plural: plural.Spanish,
	}
}

// BrazilianPortuguese is the "pt-br" locale.
func BrazilianPortuguese() *Locale {
	return &Locale{
		Code:          "pt-br",
		Months:        MonthNames{Standalone: months("janeiro_fevereiro_março_abril_maio_junho_julho_agosto_setembro_outubro_novembro_dezembro")},
		MonthsShort:   MonthNames{Standalone: months("jan_fev_mar_abr_mai_jun_jul_ago_set_out_nov_dez")},
		Weekdays:      days("domingo_segunda-feira_terça-feira_quarta-feira_quinta-feira_sexta-feira_sábado"),
		WeekdaysShort: days("dom_seg_ter_qua_qui_sex_sáb"),
		WeekdaysMin:   days("do_2ª_3ª_4ª_5ª_6ª_sá"),
		LongDateFormat: map[string]string{
			LT:   "HH:mm",
			LTS:  "HH:mm:ss",
			L:    "DD/MM/YYYY",
			LL:   "D [de] MMMM [de] YYYY",
			LLL:  "D [de] MMMM [de] YYYY [às] HH:mm",
			LLLL: "dddd, D [de] MMMM [de] YYYY [às] HH:mm",
		},
		Ordinal: IberianOrdinal,
		RelativeTime: RelativeTime{
			Future: "em %s",
			Past:   "há %s",
			Units: map[string]Forms{
				"s":  one("poucos segundos"),
				"ss": one("%d segundos"),
				"m":  one("um minuto"),
				"mm": one("%d minutos"),
				"h":  one("uma hora"),
				"hh": one("%d horas"),
				"d":  one("um dia"),
				"dd": one("%d dias"),
				"w":  one("uma semana"),
				"ww": one("%d semanas"),
				"M":  one("um mês"),
				"MM": one("%d meses"),
				"y":  one("um ano"),
				"yy": one("%d anos"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[Hoje às] LT",
			NextDay:  "[Amanhã às] LT",
			NextWeek: "dddd [às] LT",
			LastDay:  "[Ontem às] LT",
			LastWeek: "[Último] dddd [às] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 0, Doy: 6},
		Plural: plural.Romance,
	}
}

// Russian is the "ru" locale. Month names have genitive forms.
func Russian() *Locale {
	return &Locale{
		Code: "ru",
		Months: MonthNames{
			Standalone: months("январь_февраль_март_апрель_май_июнь_июль_август_сентябрь_октябрь_ноябрь_декабрь"),
			Format:     months("января_февраля_марта_апреля_мая_июня_июля_августа_сентября_октября_ноября_декабря"),
		},
		MonthsShort: MonthNames{
			Standalone: months("янв._февр._март_апр._май_июнь_июль_авг._сент._окт._нояб._дек."),
			Format:     months("янв._февр._мар._апр._мая_июня_июля_авг._сент._окт._нояб._дек."),
		},
		Weekdays:      days("воскресенье_понедельник_вторник_среда_четверг_пятница_суббота"),
		WeekdaysShort: days("вс_пн_вт_ср_чт_пт_сб"),
		WeekdaysMin:   days("вс_пн_вт_ср_чт_пт_сб"),
		LongDateFormat: map[string]string{
			LT:   "H:mm",
			LTS:  "H:mm:ss",
			L:    "DD.MM.YYYY",
			LL:   "D MMMM YYYY г.",
			LLL:  "D MMMM YYYY г., H:mm",
			LLLL: "dddd, D MMMM YYYY г., H:mm",
		},
		Meridiem: func(hour, _ int, _ bool) string {
			switch {
			case hour < 4:
				return "ночи"
			case hour < 12:
				return "утра"
			case hour < 17:
				return "дня"
			}
			return "вечера"
		},
		Ordinal: RussianOrdinal,
		RelativeTime: RelativeTime{
			Future: "через %s",
			Past:   "%s назад",
			Units: map[string]Forms{
				"s":  one("несколько секунд"),
				"ss": slavic("%d секунда", "%d секунды", "%d секунд"),
				"m":  one("минута"),
				"mm": slavic("%d минута", "%d минуты", "%d минут"),
				"h":  one("час"),
				"hh": slavic("%d час", "%d часа", "%d часов"),
				"d":  one("день"),
				"dd": slavic("%d день", "%d дня", "%d дней"),
				"w":  one("неделя"),
				"ww": slavic("%d неделя", "%d недели", "%d недель"),
				"M":  one("месяц"),
				"MM": slavic("%d месяц", "%d месяца", "%d месяцев"),
				"y":  one("год"),
				"yy": slavic("%d год", "%d года", "%d лет"),
			},
			Suffixed: map[string]Forms{
				"ss": slavic("%d секунду", "%d секунды", "%d секунд"),
				"m":  one("минуту"),
				"mm": slavic("%d минуту", "%d минуты", "%d минут"),
				"w":  one("неделю"),
				"ww": slavic("%d неделю", "%d недели", "%d недель"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[Сегодня, в] LT",
			NextDay:  "[Завтра, в] LT",
			NextWeek: "[В] dddd, [в] LT",
			LastDay:  "[Вчера, в] LT",
			LastWeek: "[В прошлый] dddd, [в] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 1, Doy: 4},
		Plural: plural.Slavic,
	}
}

// Polish is the "pl" locale. Month names have genitive forms.
func Polish() *Locale {
	return &Locale{
		Code: "pl",
		Months: MonthNames{
			Standalone: months("styczeń_luty_marzec_kwiecień_maj_czerwiec_lipiec_sierpień_wrzesień_październik_listopad_grudzień"),
			Format:     months("stycznia_lutego_marca_kwietnia_maja_czerwca_lipca_sierpnia_września_października_listopada_grudnia"),
		},
		MonthsShort:   MonthNames{Standalone: months("sty_lut_mar_kwi_maj_cze_lip_sie_wrz_paź_lis_gru")},
		Weekdays:      days("niedziela_poniedziałek_wtorek_środa_czwartek_piątek_sobota"),
		WeekdaysShort: days("ndz_pon_wt_śr_czw_pt_sob"),
		WeekdaysMin:   days("Nd_Pn_Wt_Śr_Cz_Pt_So"),
		LongDateFormat: map[string]string{
			LT:   "HH:mm",
			LTS:  "HH:mm:ss",
			L:    "DD.MM.YYYY",
			LL:   "D MMMM YYYY",
			LLL:  "D MMMM YYYY HH:mm",
			LLLL: "dddd, D MMMM YYYY HH:mm",
		},
		Ordinal: DotOrdinal,
		RelativeTime: RelativeTime{
			Future: "za %s",
			Past:   "%s temu",
			Units: map[string]Forms{
				"s":  one("kilka sekund"),
				"ss": slavic("%d sekunda", "%d sekundy", "%d sekund"),
				"m":  one("minuta"),
				"mm": slavic("%d minuta", "%d minuty", "%d minut"),
				"h":  one("godzina"),
				"hh": slavic("%d godzina", "%d godziny", "%d godzin"),
				"d":  one("1 dzień"),
				"dd": one("%d dni"),
				"w":  one("tydzień"),
				"ww": slavic("%d tydzień", "%d tygodnie", "%d tygodni"),
				"M":  one("miesiąc"),
				"MM": slavic("%d miesiąc", "%d miesiące", "%d miesięcy"),
				"y":  one("rok"),
				"yy": slavic("%d rok", "%d lata", "%d lat"),
			},
			Suffixed: map[string]Forms{
				"m": one("minutę"),
				"h": one("godzinę"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[Dziś o] LT",
			NextDay:  "[Jutro o] LT",
			NextWeek: "[W] dddd [o] LT",
			LastDay:  "[Wczoraj o] LT",
			LastWeek: "[W zeszły] dddd [o] LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 1, Doy: 4},
		Plural: plural.Polish,
	}
}

// Japanese is the "ja" locale.
func Japanese() *Locale {
	return &Locale{
		Code:          "ja",
		Months:        MonthNames{Standalone: months("1月_2月_3月_4月_5月_6月_7月_8月_9月_10月_11月_12月")},
		MonthsShort:   MonthNames{Standalone: months("1月_2月_3月_4月_5月_6月_7月_8月_9月_10月_11月_12月")},
		Weekdays:      days("日曜日_月曜日_火曜日_水曜日_木曜日_金曜日_土曜日"),
		WeekdaysShort: days("日_月_火_水_木_金_土"),
		WeekdaysMin:   days("日_月_火_水_木_金_土"),
		LongDateFormat: map[string]string{
			LT:   "HH:mm",
			LTS:  "HH:mm:ss",
			L:    "YYYY/MM/DD",
			LL:   "YYYY年M月D日",
			LLL:  "YYYY年M月D日 HH:mm",
			LLLL: "YYYY年M月D日 dddd HH:mm",
		},
		Meridiem: func(hour, _ int, _ bool) string {
			if hour < 12 {
				return "午前"
			}
			return "午後"
		},
		Ordinal: JapaneseOrdinal,
		RelativeTime: RelativeTime{
			Future: "%s後",
			Past:   "%s前",
			Units: map[string]Forms{
				"s":  one("数秒"),
				"ss": one("%d秒"),
				"m":  one("1分"),
				"mm": one("%d分"),
				"h":  one("1時間"),
				"hh": one("%d時間"),
				"d":  one("1日"),
				"dd": one("%d日"),
				"w":  one("1週間"),
				"ww": one("%d週間"),
				"M":  one("1ヶ月"),
				"MM": one("%dヶ月"),
				"y":  one("1年"),
				"yy": one("%d年"),
			},
		},
		Calendar: Calendar{
			SameDay:  "[今日] LT",
			NextDay:  "[明日] LT",
			NextWeek: "[来週]dddd LT",
			LastDay:  "[昨日] LT",
			LastWeek: "[先週]dddd LT",
			SameElse: "L",
		},
		Week:   Week{Dow: 0, Doy: 6},
		Plural: plural.Asian,
	}
}
