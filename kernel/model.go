package kernel

import "encoding/xml"

// ipset binary xml output, terse listing (ipset list -t -o xml)

type xmlIpsets struct {
	XMLName xml.Name   `xml:"ipsets"`
	Ipset   []xmlIpset `xml:"ipset"`
}

type xmlIpset struct {
	XMLName  xml.Name  `xml:"ipset"`
	Name     string    `xml:"name,attr"`
	Type     string    `xml:"type"`
	Revision uint8     `xml:"revision"`
	Header   xmlHeader `xml:"header"`
}

type xmlHeader struct {
	Family string `xml:"family"`
}
