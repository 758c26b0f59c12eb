package config

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// xmlNode is a generic element. Event names and observer keys are element
// names in the canonical schema, so the tree is walked instead of mapped onto
// fixed structs.
type xmlNode struct {
	XMLName xml.Name
	Text    string    `xml:",chardata"`
	Nodes   []xmlNode `xml:",any"`
}

func (n *xmlNode) child(name string) *xmlNode {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *xmlNode) childText(name string) any {
	c := n.child(name)
	if c == nil {
		return nil
	}
	return strings.TrimSpace(c.Text)
}

// decodeXML converts the canonical document:
//
//	<config>
//	  <events>
//	    <event_name>
//	      <observers>
//	        <observer_key>
//	          <class>...</class>
//	          <method>...</method>
//	          <singleton>1</singleton>
//	        </observer_key>
//	      </observers>
//	    </event_name>
//	  </events>
//	  <developer_mode>0</developer_mode>
//	</config>
//
// The root element name is not checked.
func decodeXML(b []byte) (document, error) {
	var root xmlNode
	if err := xml.Unmarshal(b, &root); err != nil {
		return document{}, err
	}
	doc := document{
		Events:        make(map[string]eventDoc),
		DeveloperMode: root.childText("developer_mode"),
	}
	events := root.child("events")
	if events == nil {
		return doc, nil
	}
	for _, ev := range events.Nodes {
		name := ev.XMLName.Local
		if _, dup := doc.Events[name]; dup {
			return document{}, fmt.Errorf("event %s declared more than once", name)
		}
		var ed eventDoc
		if obs := ev.child("observers"); obs != nil {
			for _, o := range obs.Nodes {
				ed.Observers = append(ed.Observers, observerDoc{
					Name:      o.XMLName.Local,
					Class:     nodeText(o.childText("class")),
					Method:    nodeText(o.childText("method")),
					Singleton: o.childText("singleton"),
				})
			}
		}
		doc.Events[name] = ed
	}
	return doc, nil
}
