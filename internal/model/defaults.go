package model

// defaultCategories is the built-in German vocabulary the rule store seeds
// on first use. The store creates missing default categories on later
// loads but never overwrites an existing category's keywords, so operator
// edits always win.
var defaultCategories = []Category{
	{Name: "Login", Keywords: []string{
		"einloggen", "login", "passwort", "anmeldung", "einloggen fehlgeschlagen", "nicht einloggen", "login funktioniert nicht",
		"authentifizierung fehler", "probleme beim anmelden", "nicht angemeldet", "zugriff", "fehlermeldung", "konto", "abmeldung",
		"kennwort", "verbindungsfehler", "sitzung", "anmeldedaten", "nutzerdaten", "loginversuch", "keine anmeldung möglich",
		"probleme mit login", "passwort falsch", "kennwort zurücksetzen", "neues passwort", "loginseite", "loginfenster",
		"verbindung fehlgeschlagen", "nicht authentifiziert", "anmeldung abgelehnt", "nutzerdaten ungültig", "app meldet fehler",
		"einloggen unmöglich", "nicht mehr angemeldet", "verbindung wird getrennt", "sitzung beendet", "session läuft ab",
		"fehlversuch login", "loginblockade",
	}},
	{Name: "TAN Probleme", Keywords: []string{
		"tan", "code", "authentifizierung", "bestätigungscode", "code kommt nicht", "tan nicht erhalten", "sms tan",
		"tan eingabe", "problem mit tan", "keine tan bekommen", "tan ungültig", "tan feld fehlt", "neue tan", "tan abgelaufen",
		"tan funktioniert nicht", "tan wird nicht akzeptiert", "falscher tan code", "keine tan sms", "tan verzögert", "push tan",
		"photo tan", "mtan", "secure tan", "tan app", "tan mail", "email tan", "keine tan gesendet", "2-faktor tan",
		"tan bleibt leer", "probleme mit authentifizierung",
	}},
	{Name: "App abstürze", Keywords: []string{
		"absturz", "hängt", "app stürzt ab", "reagiert nicht", "crash", "app friert ein", "schließt sich", "hängt sich auf",
		"abgestürzt", "beendet sich", "app hängt sich auf", "app schließt unerwartet", "fehler beim starten", "app startet nicht",
		"startet nicht mehr", "app funktioniert nicht", "nichts passiert", "plötzlich beendet", "bleibt stehen", "app reagiert nicht",
		"schwarzer bildschirm", "app lädt nicht", "absturz beim öffnen", "abbruch", "fehler beim öffnen", "startproblem",
		"app bleibt hängen", "app hängt fest", "schließt nach start", "app stürzt ständig ab",
	}},
	{Name: "Fehler / Bugs", Keywords: []string{
		"fehler", "bug", "problem", "funktioniert nicht", "technischer fehler", "defekt", "störung", "anwendungsfehler",
		"fehlerhaft", "problematisch", "systemfehler", "fehlermeldung", "appfehler", "softwareproblem", "ausnahmefehler",
		"programmfehler", "fehleranzeige", "abbruchfehler", "nicht verfügbar", "error", "fehlfunktion", "nicht geladen",
		"seitenfehler", "prozessfehler", "absturzmeldung", "stopp", "hänger", "service nicht erreichbar", "ladefehler",
		"modulproblem",
	}},
	{Name: "Rückzahlungsoptionen", Keywords: []string{
		"rückzahlung", "raten", "tilgung", "zurückzahlen", "zahlung aufteilen", "zahlungspause", "rate ändern",
		"tilgungsplan", "rückzahlung ändern", "ratenzahlung", "rückzahlungsplan", "abzahlungsoption", "zahlung stunden",
		"zahlungsaufschub", "zahlung reduzieren", "monatsrate ändern", "zahlung anpassen", "flexible raten",
		"anpassung rate", "kreditrückzahlung", "anzahlung", "zahlung verschieben", "abzahlungsdauer", "rückzahlungsart",
		"zahlung in teilen", "verzögerung", "teilrückzahlung", "ablösung kredit", "rate pausieren", "rate aussetzen",
	}},
	{Name: "Zahlungsprobleme", Keywords: []string{
		"zahlung", "überweisung", "geld senden", "keine buchung", "zahlung funktioniert nicht", "zahlung fehlgeschlagen",
		"nicht überwiesen", "nicht angekommen", "probleme mit zahlung", "überweisung hängt", "zahlung nicht möglich",
		"zahlung abgelehnt", "konnte nicht zahlen", "buchung nicht durchgeführt", "fehlende zahlung", "problem mit lastschrift",
		"banküberweisung gescheitert", "nicht gebucht", "zahlungsvorgang fehlerhaft", "betrag nicht abgebucht",
		"zahlung wurde nicht verarbeitet", "lastschrift fehlgeschlagen", "überweisung nicht angekommen",
		"zahlung nicht bestätigt", "abbuchung fehlt", "keine bestätigung", "geld nicht übertragen",
		"buchung offen", "geld nicht gutgeschrieben", "fehlermeldung bei zahlung",
	}},
	{Name: "Kompliziert / Unklar", Keywords: []string{
		"kompliziert", "nicht verständlich", "nicht intuitiv", "schwer zu verstehen", "unklar", "nicht eindeutig",
		"umständlich", "nicht nutzerfreundlich", "unverständlich", "verwirrend", "komplizierter vorgang",
		"nicht nachvollziehbar", "nicht klar erklärt", "unlogisch", "verwirrende navigation", "menü unverständlich",
		"unklare anleitung", "komplizierte beschreibung", "sperrig", "nicht selbsterklärend",
		"nicht selbsterklärlich", "verwirrende benennung", "missverständlich", "komplexe struktur",
		"kein roter faden", "nicht eindeutig beschrieben", "nicht eindeutig erklärt", "nicht selbsterklärende schritte",
		"nicht klar gegliedert", "undurchsichtig",
	}},
	{Name: "Feature-Wünsche / Kritik", Keywords: []string{
		"funktion fehlt", "wäre gut", "feature", "nicht vorgesehen", "funktion sollte", "funktion benötigt",
		"ich wünsche mir", "bitte ergänzen", "könnte man hinzufügen", "nicht verfügbar", "funktion nicht vorhanden",
		"funktion deaktiviert", "fehlt in der app", "keine möglichkeit", "nicht enthalten",
		"noch nicht verfügbar", "sollte implementiert werden", "gewünschtes feature", "funktion vermisst",
		"kein button", "nicht auswählbar", "keine option", "option fehlt", "nicht konfigurierbar",
		"könnte verbessert werden", "wünschenswert", "funktion erweitern", "benutzerwunsch", "nicht freigeschaltet",
	}},
	{Name: "Sprachprobleme", Keywords: []string{
		"englisch", "nicht auf deutsch", "sprache falsch", "nur englisch", "kein deutsch",
		"nicht lokalisiert", "übersetzung fehlt", "englische sprache", "sprache ändern",
		"menü englisch", "texte nicht übersetzt", "nur englische version",
		"übersetzungsfehler", "falsche sprache", "texte nicht verständlich",
		"fehlende lokalisierung", "keine deutsche sprache", "falsche sprachversion",
		"spracheinstellungen fehlen", "menü auf englisch", "fehlende übersetzung",
		"sprachlich unklar", "kein sprachwechsel", "interface englisch",
		"nicht auf deutsch verfügbar", "englischer hilfetext", "sprachumschaltung fehlt",
		"keine lokalisierung", "fehlende sprachwahl", "hilfe nur englisch",
	}},
	{Name: "Sicherheit", Keywords: []string{
		"sicherheit", "schutz", "sicherheitsproblem", "datenleck", "nicht sicher", "unsicher",
		"sicherheitsbedenken", "keine 2-faktor", "risiko", "zugriffsproblem",
		"sicherheitslücke", "keine verschlüsselung", "unsichere verbindung",
		"unsicherer zugang", "schutz fehlt", "keine passwortabfrage",
		"fehlende sicherheit", "daten ungeschützt", "authentifizierung unklar",
		"zugriff ohne sicherheit", "fehlender schutzmechanismus", "kein logout",
		"automatischer logout fehlt", "keine warnmeldung", "sicherheitsmeldung fehlt",
		"datenweitergabe", "keine session begrenzung", "session nicht gesichert",
		"zugangsdaten unverschlüsselt", "zugriffsrechte unklar",
	}},
	{Name: "Tagesgeld", Keywords: []string{
		"tagesgeld", "zins", "geldanlage", "sparzins", "zinskonto", "zinsen fehlen",
		"tagesgeldkonto", "keine verzinsung", "tagesgeldrate", "zinsbindung",
		"verzinsung", "zinsänderung", "tagesgeldkonto nicht sichtbar",
		"tagesgeld nicht auswählbar", "zins niedrig", "zinsangebot",
		"anlagezins", "keine zinsinfo", "zins falsch angezeigt",
		"tagesgeld fehler", "nicht verzinst", "zins fehlt",
		"tagesgeldrate nicht geändert", "tagesgeldrate nicht angepasst",
		"zinsbuchung fehlt", "zinsrate falsch", "zins wird nicht berechnet",
		"tagesgeldkonto fehlt", "keine zinsanpassung", "tagesgeldoption fehlt",
	}},
	{Name: "Werbung", Keywords: []string{
		"werbung", "angebot", "promo", "aktionscode", "zu viel werbung",
		"nerversige werbung", "nicht relevant", "spam", "werbeeinblendung",
		"promotion", "werbeanzeige", "werbebanner", "werbebotschaft",
		"unpassende werbung", "irrelevante werbung", "werbeaktion",
		"werbung eingeblendet", "push werbung", "email werbung",
		"werbung auf startseite", "nicht deaktivierbar", "werbung bei login",
		"keine option zum abschalten", "störende werbung", "zu viele angebote",
		"angebote nerven", "werbung in app", "werbung zu präsent",
		"popup werbung", "unnötige angebote",
	}},
	{Name: "UI/UX", Keywords: []string{
		"veraltet", "nicht modern", "design alt", "nicht intuitiv",
		"menüführung schlecht", "layout veraltet", "keine struktur",
		"nicht übersichtlich", "nicht schön", "altbacken", "altmodisch",
		"nicht benutzerfreundlich", "unübersichtliches layout",
		"nicht ansprechend", "veraltetes interface", "kein modernes design",
		"wirkt alt", "design nicht aktuell", "unmoderne oberfläche",
		"technisch alt", "nicht responsive", "bedienung veraltet",
		"style altbacken", "nutzung unkomfortabel", "umständliches layout",
		"nicht ansehnlich", "elemente zu klein", "zu viel text", "keine icons",
		"unpraktische darstellung",
	}},
	{Name: "unübersichtlich", Keywords: []string{
		"unübersichtlich", "nicht klar", "durcheinander", "nicht strukturiert",
		"keine ordnung", "keine übersicht", "zu komplex", "schlecht aufgebaut",
		"nicht nachvollziehbar", "layout chaotisch", "verwirrend",
		"keine menüstruktur", "kein überblick", "unklare gliederung",
		"unstrukturierte darstellung", "unübersichtliche seite",
		"navigation schwierig", "kompliziertes menü", "kein roter faden",
		"menüführung unklar", "fehlende kategorien", "kein filter",
		"ohne sortierung", "unleserlich", "überladen", "optisch unklar",
		"nicht gut erkennbar", "kategorie fehlt",
	}},
	{Name: "langsam", Keywords: []string{
		"langsam", "lädt lange", "dauert ewig", "träge", "reaktionszeit",
		"verzögert", "ewiges laden", "warten", "verbindung langsam",
		"nicht flüssig", "app ist träge", "verzögerte reagieren",
		"ladeprobleme", "app ist langsam", "reagiert langsam",
		"lange ladezeit", "performanceschwäche", "zu langsam",
		"langsamer aufbau", "app lädt nicht sofort", "träge benutzung",
		"startet langsam", "verarbeitung dauert", "menü öffnet langsam",
		"daten laden ewig", "prozess dauert", "feedback dauert",
		"anmeldung langsam", "reaktion zu spät", "verarbeitung verzögert",
	}},
	{Name: "Kundenservice", Keywords: []string{
		"support", "hotline", "rückruf", "keine antwort", "niemand erreichbar",
		"service schlecht", "lange wartezeit", "kundendienst", "keine hilfe",
		"service reagiert nicht", "keine unterstützung", "reagiert nicht",
		"kontakt nicht möglich", "wartezeit", "keine rückmeldung",
		"telefonisch nicht erreichbar", "keine lösung", "antwort dauert",
		"kundenberatung fehlt", "keine antwort erhalten", "hotline nicht erreichbar",
		"keine serviceleistung", "kundensupport schlecht", "kundenbetreuung mangelhaft",
		"kundenservice reagiert nicht", "service schwer erreichbar", "service antwortet nicht",
		"nicht geholfen", "unfreundlicher support", "hilft nicht weiter",
	}},
	{Name: "Kontaktmöglichkeiten", Keywords: []string{
		"ansprechpartner", "kontakt", "rückruf", "nicht erreichbar", "kein kontakt",
		"keine kontaktdaten", "hilfe fehlt", "kontaktformular", "keine rückmeldung",
		"support kontakt", "kein formular", "supportformular fehlt",
		"kundendienst kontaktieren", "telefon fehlt", "email fehlt", "nur hotline",
		"kontakt schwierig", "kontaktierung unklar", "kontaktoption fehlt",
		"keine kontaktmöglichkeit", "nicht ansprechbar", "support schwer erreichbar",
		"kein livechat", "keine supportmail", "anfrage nicht möglich",
		"kein rückruf erhalten", "kontaktseite leer", "keine kontaktfunktion",
		"kontaktmöglichkeit nicht ersichtlich", "anfrageformular fehlt",
	}},
	{Name: "Vertrauenswürdigkeit", Keywords: []string{
		"vertrauen", "abzocke", "nicht seriös", "zweifelhaft", "skepsis",
		"nicht glaubwürdig", "unsicher", "nicht transparent", "betrugsverdacht",
		"nicht vertrauenswürdig", "datensicherheit", "nicht nachvollziehbar",
		"intransparente kosten", "unseriös", "abzocker", "misstrauen",
		"unsicheres gefühl", "nicht überprüfbar", "unvollständig",
		"zweifelhaftes angebot", "kein impressum", "keine transparenz",
		"zweifelhaftes verhalten", "verdacht auf betrug", "unsichere kommunikation",
		"fehlende datensicherheit", "keine aufklärung", "unzuverlässig",
		"fragwürdig", "irreführend",
	}},
	{Name: "Gebühren", Keywords: []string{
		"gebühr", "zinsen", "bearbeitungsgebühr", "kosten", "preis", "zu teuer",
		"gebühren nicht klar", "versteckte kosten", "nicht kostenlos",
		"zusatzkosten", "gebühren unklar", "bankgebühren",
		"gebührenerhöhung", "nicht transparent", "kosten zu hoch",
		"gebührenänderung", "kontoführungsgebühr", "auszahlungsgebühr",
		"transaktionsgebühr", "gebühr zu hoch", "zu hohe zinsen",
		"gebühreninfo fehlt", "unverhältnismäßige gebühr", "gebühr nicht nachvollziehbar",
		"entgelt", "gebührenbelastung", "gebühr nicht verständlich",
		"servicegebühr", "provision", "kostenaufstellung fehlt",
	}},
}

// DefaultRuleSet returns a fresh rule set holding the built-in vocabulary.
func DefaultRuleSet() *RuleSet {
	rs, err := NewRuleSetFromCategories(defaultCategories)
	if err != nil {
		// The built-in vocabulary is static and known-valid.
		panic("model: invalid default vocabulary: " + err.Error())
	}
	return rs
}

// DefaultCategories returns the built-in vocabulary as an ordered snapshot.
func DefaultCategories() []Category {
	rs := DefaultRuleSet()
	return rs.Snapshot()
}
