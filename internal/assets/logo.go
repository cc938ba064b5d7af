package assets

// LogoSVG is the white NFD mark, drawn over an orange disc on every card.
const LogoSVG = `<svg width="112" height="112" viewBox="0 0 4000 4000" fill="none" xmlns="http://www.w3.org/2000/svg">
  <polygon fill="white" points="2020.2,1539.2 2020.2,1539.2 1539.2,1539.2 1539.2,1539.2 1539.2,1699.5 1539.2,1859.9 1539.2,2020.2 1539.2,2180.5 1539.2,2501.2 2020.2,2501.2 2020.2,2180.5 2260.7,2180.5 2260.7,2020.2 2260.7,1859.9 2501.2,1859.9 2501.2,1699.5 2501.2,1539.2"/>
  <polygon fill="white" points="986.1,1539.2 986.1,2020.2 505.1,1539.2 505.1,2501.2 986.1,2501.2 1467.1,2501.2 1467.1,2020.2 1467.1,1539.2"/>
  <path fill="white" d="M3054.4,1539.2h-481 v481v481h481c265.6,0,481-215.4,481-481C3535.4,1754.6,3320,1539.2,3054.4,1539.2z"/>
</svg>`

// BrandColor is the orange behind the mark.
const BrandColor = "#FF5C35"
