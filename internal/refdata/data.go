package refdata

// Embedded reference tables. The landline/zip maps use the tolerant
// `export const X = { "key": "value", ... }` source format described by the
// embedding contract; parseTable() in registry.go consumes it directly.

const embeddedLandlinePrefixToCity = `
export const landlinePrefixToCity = {
  "030": "berlin",
  "040": "hamburg",
  "069": "frankfurt am main",
  "089": "muenchen",
  "0211": "duesseldorf",
  "0221": "koeln",
  "0228": "bonn",
  "0231": "dortmund",
  "0241": "aachen",
  "0251": "muenster",
  "0261": "koblenz",
  "0271": "siegen",
  "0281": "bottrop",
  "0291": "meschede",
  "0301": "berlin",
  "0341": "leipzig",
  "0351": "dresden",
  "0361": "erfurt",
  "0371": "chemnitz",
  "0391": "magdeburg",
  "0421": "bremen",
  "0431": "kiel",
  "0441": "oldenburg",
  "0451": "luebeck",
  "0461": "flensburg",
  "0511": "hannover",
  "0521": "bielefeld",
  "0531": "braunschweig",
  "0541": "osnabrueck",
  "0561": "kassel",
  "0611": "wiesbaden",
  "0621": "mannheim",
  "0631": "kaiserslautern",
  "0641": "giessen",
  "0651": "trier",
  "0661": "fulda",
  "0711": "stuttgart",
  "0721": "karlsruhe",
  "0731": "ulm",
  "0741": "villingen-schwenningen",
  "0751": "ravensburg",
  "0761": "freiburg im breisgau",
  "0771": "donaueschingen",
  "0781": "offenburg",
  "0791": "schwaebisch hall",
  "0821": "augsburg",
  "0831": "kempten",
  "0841": "ingolstadt",
  "0851": "passau",
  "0861": "traunstein",
  "0871": "landshut",
  "0881": "weilheim",
  "0911": "nuernberg",
  "0921": "bayreuth",
  "0931": "wuerzburg",
  "0941": "regensburg",
  "0951": "bamberg",
  "0961": "hof",
}
`

const embeddedZipToCity = `
export const zipToCity = {
  "10115": "berlin",
  "10117": "berlin",
  "10178": "berlin",
  "20095": "hamburg",
  "20099": "hamburg",
  "22397": "hamburg",
  "60311": "frankfurt am main",
  "60594": "frankfurt am main",
  "80331": "muenchen",
  "80333": "muenchen",
  "40210": "duesseldorf",
  "50667": "koeln",
  "53111": "bonn",
  "44135": "dortmund",
  "52062": "aachen",
  "48143": "muenster",
  "56068": "koblenz",
  "57072": "siegen",
  "04109": "leipzig",
  "01067": "dresden",
  "99084": "erfurt",
  "09111": "chemnitz",
  "39104": "magdeburg",
  "28195": "bremen",
  "24103": "kiel",
  "26122": "oldenburg",
  "23552": "luebeck",
  "24937": "flensburg",
  "30159": "hannover",
  "33602": "bielefeld",
  "38100": "braunschweig",
  "49074": "osnabrueck",
  "34117": "kassel",
  "34123": "kassel",
  "65183": "wiesbaden",
  "68159": "mannheim",
  "67655": "kaiserslautern",
  "35390": "giessen",
  "54290": "trier",
  "36037": "fulda",
  "70173": "stuttgart",
  "76133": "karlsruhe",
  "89073": "ulm",
  "78048": "villingen-schwenningen",
  "88212": "ravensburg",
  "79098": "freiburg im breisgau",
  "78166": "donaueschingen",
  "77652": "offenburg",
  "74523": "schwaebisch hall",
  "86150": "augsburg",
  "87435": "kempten",
  "85049": "ingolstadt",
  "94032": "passau",
  "83278": "traunstein",
  "84028": "landshut",
  "82362": "weilheim",
  "90402": "nuernberg",
  "95444": "bayreuth",
  "97070": "wuerzburg",
  "93047": "regensburg",
  "96047": "bamberg",
  "95030": "hof",
  "12345": "musterstadt",
}
`

const embeddedFirstNames = `Alexander|Andreas|Anna|Anja|Anke|Anton|Barbara|Benjamin|Bernd|Birgit|Carsten|Christian|Christina|Christoph|Claudia|Daniel|David|Dennis|Dirk|Dorothea|Eva|Felix|Florian|Frank|Franziska|Georg|Gerhard|Hanna|Hans|Heike|Heinrich|Helga|Ines|Jan|Jana|Jens|Johannes|Jonas|Julia|Jürgen|Karin|Karl|Karsten|Katharina|Katrin|Klaus|Kristina|Lars|Laura|Lena|Lukas|Manfred|Manuela|Marcel|Marco|Maria|Markus|Martin|Martina|Matthias|Max|Michael|Michaela|Miriam|Monika|Nadine|Nicole|Niklas|Nina|Norbert|Oliver|Patrick|Paul|Peter|Petra|Philipp|Rainer|Ralf|Renate|René|Robert|Sabine|Sandra|Sascha|Sebastian|Simon|Sonja|Stefan|Stefanie|Susanne|Sven|Thomas|Thorsten|Tobias|Torben|Ulrich|Ulrike|Uwe|Vanessa|Verena|Volker|Werner|Wolfgang|Yvonne`

const embeddedParticles = `von|von der|vom|zu|zur|van|de|del|da|di|du|la|le|ter|den|der|freiherr|baron|graf`

const embeddedNamePrefixes = `dr.|dr|prof.|prof|prof.dr.|dipl.-ing.|dipl.-ing|dipl.-kfm.|mba|herr|frau|ing.|mag.`

const embeddedKnownCities = `Berlin|Hamburg|München|Muenchen|Köln|Koeln|Frankfurt am Main|Frankfurt|Stuttgart|Düsseldorf|Duesseldorf|Leipzig|Dortmund|Essen|Bremen|Dresden|Hannover|Nürnberg|Nuernberg|Duisburg|Bochum|Wuppertal|Bielefeld|Bonn|Münster|Muenster|Mannheim|Karlsruhe|Augsburg|Wiesbaden|Mönchengladbach|Gelsenkirchen|Braunschweig|Chemnitz|Kiel|Aachen|Halle|Magdeburg|Freiburg im Breisgau|Krefeld|Lübeck|Luebeck|Oberhausen|Erfurt|Mainz|Rostock|Kassel|Hagen|Saarbrücken|Hamm|Mülheim an der Ruhr|Potsdam|Ludwigshafen am Rhein|Oldenburg|Leverkusen|Osnabrück|Osnabrueck|Solingen|Heidelberg|Herne|Neuss|Darmstadt|Regensburg|Paderborn|Ingolstadt|Würzburg|Wuerzburg|Fürth|Wolfsburg|Ulm|Heilbronn|Pforzheim|Göttingen|Bottrop|Trier|Recklinghausen|Reutlingen|Bremerhaven|Koblenz|Bergisch Gladbach|Jena|Remscheid|Erlangen|Moers|Siegen|Hildesheim|Salzgitter|Kaiserslautern|Cottbus|Gütersloh|Witten|Schwerin|Iserlohn|Ludwigsburg|Flensburg|Gera|Esslingen am Neckar|Ratingen|Villingen-Schwenningen|Konstanz|Worms|Marburg|Neumünster|Delmenhorst|Lünen|Rheine|Düren|Wilhelmshaven|Bayreuth|Brandenburg an der Havel|Bamberg|Fulda|Passau|Landshut|Traunstein|Weilheim|Donaueschingen|Offenburg|Schwäbisch Hall|Musterstadt`

const embeddedMailProviderDomains = `gmail.com|googlemail.com|yahoo.com|yahoo.de|outlook.com|hotmail.com|live.com|icloud.com|gmx.de|gmx.net|gmx.at|gmx.ch|web.de|t-online.de|freenet.de|arcor.de|posteo.de|mailbox.org|protonmail.com|proton.me|aol.com|zoho.com|yandex.com|mail.ru`

const embeddedLegalForms = `gmbh & co. kg|gmbh & co.kg|gmbh|mbh|ug (haftungsbeschränkt)|ug|ag|se|kg|kgaa|ohg|gbr|e.v.|ev|e.k.|ek|ltd. & co. kg|ltd|plc|inc.|inc|corp.|corp|llc|bv|nv|sa|sarl|s.r.o.|spa|co.|kgaG`

const embeddedTitleKeywords = `geschäftsführer|geschaeftsfuehrer|geschäftsführerin|inhaber|inhaberin|vorstand|vorstandsvorsitzender|ceo|cfo|coo|cto|prokurist|prokuristin|abteilungsleiter|abteilungsleiterin|teamleiter|teamleiterin|projektleiter|projektleiterin|niederlassungsleiter|vertriebsleiter|marketingleiter|personalleiter|leiter|leiterin|manager|managerin|director|direktor|direktorin|sachbearbeiter|sachbearbeiterin|berater|beraterin|consultant|ingenieur|ingenieurin|entwickler|entwicklerin|architekt|architektin|präsident|president`

const embeddedMobilePrefixes = `015|016|017`
